package root

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "fastos",
	Short: "Simulated fast-boot operating system",
	Long:  `fastos simulates an operating system that boots its services in parallel, with a desktop shell, a command console and an HTTP control API`,
}
