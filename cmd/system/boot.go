package system

import (
	"context"
	"fmt"
	"time"

	"fastos/internal/rpc"
	"fastos/services"

	"github.com/spf13/cobra"
)

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Boot the system",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bootSystem(context.Background()); err != nil {
			fmt.Println(err)
		}
	},
}

/**
 * Boot the system, preferring a running fastos server
 * @param {context.Context} ctx - Context for request cancellation and timeout
 * @returns {error} Returns error if boot fails, nil on success
 * @description
 * - Tries the server API first so a running desktop/server sees the boot
 * - Falls back to a local in-process system when no server answers
 * - A guard rejection (already booted) is reported, not treated as an error
 */
func bootSystem(ctx context.Context) error {
	config := rpc.DefaultHTTPConfig()
	config.Timeout = 2 * time.Minute
	rpcClient := rpc.NewHTTPClient(config)
	defer rpcClient.Close()

	resp, err := rpcClient.Post("/fastos/api/v1/system/boot", nil)
	if err != nil {
		return bootSystemLocally(ctx)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		fmt.Println("System booted via fastos server")
	case resp.StatusCode == 409:
		fmt.Println("Boot ignored: system is already on or in transition")
	default:
		fmt.Printf("Unexpected response from fastos server: %s\n", resp.Text)
	}
	return nil
}

// bootSystemLocally runs the boot on an in-process system and prints the
// resulting log.
func bootSystemLocally(ctx context.Context) error {
	sys := services.GetSystem()
	sys.Runner.Boot(ctx)
	for _, entry := range sys.Sink.Snapshot() {
		fmt.Println(entry.Text)
	}
	return nil
}

func init() {
	systemCmd.AddCommand(bootCmd)
}
