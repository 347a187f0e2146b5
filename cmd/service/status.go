package service

import (
	"encoding/json"
	"fmt"

	"fastos/internal/models"
	"fastos/internal/rpc"
	"fastos/services"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [service name]",
	Short: "Show service status",
	Long:  "Shows the detailed status of one registered service",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showServiceStatus(args[0]); err != nil {
			fmt.Println(err)
		}
	},
}

func showServiceStatus(name string) error {
	detail, err := fetchService(name)
	if err != nil {
		local, ok := services.GetSystem().Registry.GetDetail(name)
		if !ok {
			return fmt.Errorf("service '%s' not found", name)
		}
		detail = local
	}

	fmt.Printf("Name: %s\n", detail.Name)
	fmt.Printf("Status: %s\n", detail.Status)
	fmt.Printf("Boot Delay: %s\n", detail.BootDelay)
	fmt.Printf("Shutdown Delay: %s\n", detail.ShutdownDelay)
	if detail.StartTime != "" {
		fmt.Printf("Started At: %s\n", detail.StartTime)
	}
	return nil
}

func fetchService(name string) (models.ServiceDetail, error) {
	rpcClient := rpc.NewHTTPClient(nil)
	defer rpcClient.Close()

	var detail models.ServiceDetail
	resp, err := rpcClient.Get("/fastos/api/v1/services/"+name, nil)
	if err != nil {
		return detail, err
	}
	if resp.StatusCode == 404 {
		return detail, fmt.Errorf("service '%s' not found", name)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return detail, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.Unmarshal(resp.Body, &detail); err != nil {
		return detail, fmt.Errorf("failed to unmarshal service response: %w", err)
	}
	return detail, nil
}

func init() {
	serviceCmd.AddCommand(statusCmd)
}
