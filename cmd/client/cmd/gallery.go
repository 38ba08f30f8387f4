package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ministry/internal/app/client"
)

var galleryJSON bool

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Show the media gallery",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items, err := app.Gallery(cmd.Context())
		if err != nil {
			return fmt.Errorf("load gallery: %w", err)
		}

		if galleryJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		return client.RenderGallery(cmd.OutOrStdout(), items, client.TerminalWidth(os.Stdout))
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		status, err := app.CheckConnection(cmd.Context())
		if err != nil {
			return fmt.Errorf("server unavailable: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d materials, up %s\n", status.Status, status.Materials, status.Uptime)
		return nil
	},
}

func init() {
	galleryCmd.Flags().BoolVar(&galleryJSON, "json", false, "print JSON")
}
