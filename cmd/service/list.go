package service

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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered services",
	Long:  "Lists every registered service with its simulated delays and current status, in registry order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listServices(); err != nil {
			fmt.Println(err)
		}
	},
}

/**
 * List all registered services
 * @returns {error} Returns error if listing fails, nil on success
 * @description
 * - Asks a running fastos server first; a live server knows the real
 *   statuses of services booted through it
 * - Falls back to the local registry when no server answers
 */
func listServices() error {
	details, err := fetchServices()
	if err != nil {
		details = services.GetSystem().Registry.Details()
	}

	if len(details) == 0 {
		fmt.Println("No services registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tBOOT DELAY\tSHUTDOWN DELAY")
	for _, svc := range details {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", svc.Name, svc.Status, svc.BootDelay, svc.ShutdownDelay)
	}
	return w.Flush()
}

func fetchServices() ([]models.ServiceDetail, error) {
	rpcClient := rpc.NewHTTPClient(nil)
	defer rpcClient.Close()

	resp, err := rpcClient.Get("/fastos/api/v1/services", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var details []models.ServiceDetail
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal services response: %w", err)
	}
	return details, nil
}

func init() {
	serviceCmd.AddCommand(listCmd)
}
