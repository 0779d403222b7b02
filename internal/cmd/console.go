package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/yacchi/mapskey/internal/ui"
)

const (
	credentialsURL = "https://console.cloud.google.com/google/maps-apis/credentials"
	mapStylesURL   = "https://console.cloud.google.com/google/maps-apis/studio/maps"
)

var (
	consoleMapIDs    bool
	consolePrintOnly bool
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the Google Maps Platform console",
	Long: `Open the Google Maps Platform console in a browser, where API keys
and Map IDs are managed.

Examples:
  mapskey console
  mapskey console --map-ids
  mapskey console --print`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&consoleMapIDs, "map-ids", false, "Open the Map ID management page")
	consoleCmd.Flags().BoolVar(&consolePrintOnly, "print", false, "Print the URL instead of opening it")
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	url := credentialsURL
	if consoleMapIDs {
		url = mapStylesURL
	}

	if consolePrintOnly {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	}

	ui.Info("Opening %s", ui.Hyperlink(url, url))
	return browser.OpenURL(url)
}
