package desktop

import (
	"fmt"

	"fastos/cmd/root"
	"fastos/internal/config"
	"fastos/services"
	"fastos/tui"

	"github.com/spf13/cobra"
)

var themeName string

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Open the FastOS desktop shell",
	Long:  `Opens the interactive desktop: Boot and Shutdown buttons, a command console and a live log view`,
	Run: func(cmd *cobra.Command, args []string) {
		theme := themeName
		if theme == "" {
			theme = config.Config.UI.Theme
		}
		if err := tui.Run(services.GetSystem(), theme); err != nil {
			fmt.Println(err)
		}
	},
}

const desktopExample = `  # open the desktop with the configured theme
  fastos desktop

  # open in dark mode
  fastos desktop --theme DarkMode`

func init() {
	root.RootCmd.AddCommand(desktopCmd)

	desktopCmd.Example = desktopExample
	desktopCmd.Flags().StringVarP(&themeName, "theme", "t", "", "Color theme (CoolWarm/DarkMode)")
}
