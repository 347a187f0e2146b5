package system

import (
	"fastos/cmd/root"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "System operations (boot/shutdown/state)",
	Long:  `System operations (boot/shutdown/state)`,
}

const systemExample = `  # boot the system
  fastos system boot`

func init() {
	root.RootCmd.AddCommand(systemCmd)

	systemCmd.Example = systemExample
}
