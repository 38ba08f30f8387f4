package material

import (
	"fmt"

	"github.com/spf13/cobra"

	"ministry/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a service material",
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

		if err := app.Delete(cmd.Context(), id); err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("service material #%d not found", id)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
		return nil
	},
}
