package run

import (
	"encoding/json"
	"fmt"
	"strings"

	"fastos/cmd/root"
	"fastos/internal/models"
	"fastos/internal/rpc"
	"fastos/services"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [command line]",
	Short: "Execute a console command",
	Long:  "Executes one console command line (status, services, uptime, help) and prints the response",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		executeLine(strings.Join(args, " "))
	},
}

const runExample = `  # report the system state
  fastos run status

  # list services with their statuses
  fastos run services`

func executeLine(line string) {
	resp, err := executeRemote(line)
	if err != nil {
		resp = services.GetSystem().Interpreter.Execute(line)
	}
	fmt.Println(resp)
}

// executeRemote runs the command on a running fastos server, which is the
// only place live statuses exist.
func executeRemote(line string) (string, error) {
	rpcClient := rpc.NewHTTPClient(nil)
	defer rpcClient.Close()

	resp, err := rpcClient.Post("/fastos/api/v1/command", models.CommandRequest{Line: line})
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result models.CommandResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal command response: %w", err)
	}
	return result.Response, nil
}

func init() {
	root.RootCmd.AddCommand(runCmd)

	runCmd.Example = runExample
}
