package service

import (
	"fastos/cmd/root"

	"github.com/spf13/cobra"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Service operations (list/status)",
	Long:  `Service operations (list/status)`,
}

const serviceExample = `  # show the status of one service
  fastos service status networking`

func init() {
	root.RootCmd.AddCommand(serviceCmd)

	serviceCmd.Example = serviceExample
}
