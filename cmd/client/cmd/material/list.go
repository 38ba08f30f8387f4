package material

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ministry/internal/app/client"
)

var (
	listSort     string
	listDesc     bool
	listPage     int
	listPageSize int
	listJSON     bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List service materials",
	Long: `Shows the catalog as a table.

Sort keys: id, name, category, status, fileName, fileSize, editor, updatedAt.
Missing values are always listed last.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		tbl, err := app.MaterialsTable(cmd.Context(), listSort, listDesc, listPage, listPageSize)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tbl.Rows())
		}
		if err := client.RenderTable(cmd.OutOrStdout(), tbl); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort column")
	ListCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	ListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "rows per page (default from PAGE_SIZE)")
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "print the page as JSON")
}
