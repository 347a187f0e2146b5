package services

import (
	"fmt"
	"strings"
	"time"
)

// Interpreter matches typed command lines against the fixed command table and
// writes both the echo and the response through the log sink. Commands are
// exact lowercase matches; it never blocks and never fails.
type Interpreter struct {
	runner *Runner
	reg    *Registry
	sink   *LogSink
}

func NewInterpreter(runner *Runner, reg *Registry, sink *LogSink) *Interpreter {
	return &Interpreter{
		runner: runner,
		reg:    reg,
		sink:   sink,
	}
}

/**
 * Execute a typed command line
 * @param {string} line - Raw command text
 * @returns {string} Returns the response text, also appended to the log
 * @description
 * - Empty input is ignored entirely (no echo, no response)
 * - The line is echoed as "> <line>" before the response, as the desktop
 *   shell of the original system does
 * - Unknown input responds with "Unknown command: <line>"
 */
func (in *Interpreter) Execute(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	in.sink.Append("> " + line)

	var resp string
	switch line {
	case "status":
		resp = in.runner.State().String()
	case "services":
		resp = in.serviceTable()
	case "uptime":
		resp = in.uptime()
	case "help":
		resp = "Available commands: status, services, uptime, help. Try 'status' or 'services'."
	default:
		resp = "Unknown command: " + line
	}

	in.sink.Append(resp)
	RecordCommand(commandLabel(line))
	return resp
}

// serviceTable renders one "name: status" line per service in registry order.
func (in *Interpreter) serviceTable() string {
	var b strings.Builder
	for i, detail := range in.reg.Details() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", detail.Name, detail.Status)
	}
	return b.String()
}

func (in *Interpreter) uptime() string {
	up := in.runner.Uptime()
	if up == 0 {
		return "System is not running."
	}
	return fmt.Sprintf("Up %s.", up.Round(time.Second))
}

// commandLabel keeps the prometheus label space bounded for unknown input.
func commandLabel(line string) string {
	switch line {
	case "status", "services", "uptime", "help":
		return line
	default:
		return "unknown"
	}
}
