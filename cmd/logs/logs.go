package logs

import (
	"encoding/json"
	"fmt"
	"strconv"

	"fastos/cmd/root"
	"fastos/internal/models"
	"fastos/internal/rpc"

	"github.com/spf13/cobra"
)

var since int64

var Cmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the system event log",
	Long:  "Prints the append-ordered event log of a running fastos server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printLogs(); err != nil {
			fmt.Println(err)
		}
	},
}

func printLogs() error {
	rpcClient := rpc.NewHTTPClient(nil)
	defer rpcClient.Close()

	params := map[string]string{}
	if since > 0 {
		params["since"] = strconv.FormatInt(since, 10)
	}
	resp, err := rpcClient.Get("/fastos/api/v1/logs", params)
	if err != nil {
		return fmt.Errorf("no running fastos server: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var entries []models.LogEntry
	if err := json.Unmarshal(resp.Body, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal log response: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("Log is empty")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("%6d  %s\n", entry.Seq, entry.Text)
	}
	return nil
}

func init() {
	root.RootCmd.AddCommand(Cmd)
	Cmd.Flags().SortFlags = false
	Cmd.Flags().Int64VarP(&since, "since", "s", 0, "Only entries with a sequence number greater than this")
}
