package system

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"fastos/internal/models"
	"fastos/internal/rpc"
	"fastos/services"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Display system state",
	Long:  `Displays the system state, boot time, uptime and every service's status`,
	Run: func(cmd *cobra.Command, args []string) {
		showSystemState()
	},
}

func showSystemState() {
	detail, err := fetchSystemState()
	if err != nil {
		detail = services.GetSystem().GetDetail()
	}
	printSystemState(detail)
}

// fetchSystemState asks a running fastos server for its state.
func fetchSystemState() (models.SystemDetail, error) {
	rpcClient := rpc.NewHTTPClient(nil)
	defer rpcClient.Close()

	var detail models.SystemDetail
	resp, err := rpcClient.Get("/fastos/api/v1/system/state", nil)
	if err != nil {
		return detail, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return detail, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.Unmarshal(resp.Body, &detail); err != nil {
		return detail, fmt.Errorf("failed to unmarshal state response: %w", err)
	}
	return detail, nil
}

func printSystemState(detail models.SystemDetail) {
	fmt.Printf("%s v%s\n", detail.Name, detail.Version)
	fmt.Printf("State: %s\n", detail.State)
	if detail.BootTime != "" {
		fmt.Printf("Boot Time: %s\n", detail.BootTime)
	}
	if detail.Uptime != "" {
		fmt.Printf("Uptime: %s\n", detail.Uptime)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tBOOT DELAY\tSHUTDOWN DELAY")
	for _, svc := range detail.Services {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", svc.Name, svc.Status, svc.BootDelay, svc.ShutdownDelay)
	}
	w.Flush()
}

func init() {
	systemCmd.AddCommand(stateCmd)
}
