package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastos/internal/models"
)

func TestExecuteStatus(t *testing.T) {
	sys := NewSystem(testConfig(5*time.Millisecond, 5*time.Millisecond))

	assert.Equal(t, "Off", sys.Interpreter.Execute("status"))

	require.True(t, sys.Runner.Boot(context.Background()))

	assert.Equal(t, "On", sys.Interpreter.Execute("status"))
}

func TestExecuteServicesListsRegistryOrder(t *testing.T) {
	sys := NewSystem(testConfig(5*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond))

	resp := sys.Interpreter.Execute("services")
	lines := strings.Split(resp, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "svc-a: Stopped", lines[0])
	assert.Equal(t, "svc-b: Stopped", lines[1])
	assert.Equal(t, "svc-c: Stopped", lines[2])

	require.True(t, sys.Runner.Boot(context.Background()))

	lines = strings.Split(sys.Interpreter.Execute("services"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.True(t, strings.HasSuffix(line, ": Running"), "line %d: %s", i, line)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	resp := sys.Interpreter.Execute("unknowncmd")
	assert.Equal(t, "Unknown command: unknowncmd", resp)

	entries := sys.Sink.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "> unknowncmd", entries[0].Text)
	assert.Equal(t, "Unknown command: unknowncmd", entries[1].Text)
}

// Commands are exact lowercase matches; anything else is unknown.
func TestExecuteRequiresExactLowercase(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	assert.Equal(t, "Unknown command: STATUS", sys.Interpreter.Execute("STATUS"))
	assert.Equal(t, "Unknown command: Status", sys.Interpreter.Execute("Status"))
}

func TestExecuteEmptyLineIsIgnored(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	assert.Equal(t, "", sys.Interpreter.Execute(""))
	assert.Equal(t, "", sys.Interpreter.Execute("   "))
	assert.Zero(t, sys.Sink.Len())
}

func TestExecuteTrimsSurroundingSpace(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	assert.Equal(t, "Off", sys.Interpreter.Execute("  status  "))
}

func TestExecuteHelp(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	resp := sys.Interpreter.Execute("help")
	assert.Contains(t, resp, "status")
	assert.Contains(t, resp, "services")
}

func TestExecuteUptime(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	assert.Equal(t, "System is not running.", sys.Interpreter.Execute("uptime"))

	require.True(t, sys.Runner.Boot(context.Background()))

	assert.True(t, strings.HasPrefix(sys.Interpreter.Execute("uptime"), "Up "))
}

func TestExecuteEchoesCommandBeforeResponse(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	sys.Interpreter.Execute("status")

	entries := sys.Sink.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, "> status", entries[0].Text)
	assert.Equal(t, models.SystemOff.String(), entries[1].Text)
}
