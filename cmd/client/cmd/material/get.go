package material

import (
	"github.com/spf13/cobra"

	"ministry/internal/app/client"
)

var GetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one service material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, err := app.Material(cmd.Context(), id)
		if err != nil {
			return err
		}
		return client.RenderMaterial(cmd.OutOrStdout(), m)
	},
}
