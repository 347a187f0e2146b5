package system

import (
	"context"
	"fmt"
	"time"

	"fastos/internal/rpc"
	"fastos/services"

	"github.com/spf13/cobra"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Shut the system down",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := shutdownSystem(context.Background()); err != nil {
			fmt.Println(err)
		}
	},
}

func shutdownSystem(ctx context.Context) error {
	config := rpc.DefaultHTTPConfig()
	config.Timeout = 2 * time.Minute
	rpcClient := rpc.NewHTTPClient(config)
	defer rpcClient.Close()

	resp, err := rpcClient.Post("/fastos/api/v1/system/shutdown", nil)
	if err != nil {
		// No server running; a fresh local system is Off, so the guard
		// will explain the rejection.
		sys := services.GetSystem()
		sys.Runner.Shutdown(ctx)
		for _, entry := range sys.Sink.Snapshot() {
			fmt.Println(entry.Text)
		}
		return nil
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		fmt.Println("System shut down via fastos server")
	case resp.StatusCode == 409:
		fmt.Println("Shutdown ignored: system is not on")
	default:
		fmt.Printf("Unexpected response from fastos server: %s\n", resp.Text)
	}
	return nil
}

func init() {
	systemCmd.AddCommand(shutdownCmd)
}
