package material

import (
	"fmt"

	"github.com/spf13/cobra"

	"ministry/internal/app/client"
)

var (
	uploadName        string
	uploadCategory    string
	uploadDescription string
)

var UploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload a new service material",
	Long: `Creates a service material from one or more files. Every file is
checked, only the first one is stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, err := app.Upload(cmd.Context(), client.UploadRequest{
			Name:        uploadName,
			Category:    uploadCategory,
			Description: uploadDescription,
			Files:       args,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %q as #%d\n", m.Name, m.ID)
		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadName, "name", "n", "", "material name")
	UploadCmd.Flags().StringVarP(&uploadCategory, "category", "c", "", "category slug, e.g. order-of-service")
	UploadCmd.Flags().StringVarP(&uploadDescription, "description", "d", "", "description")
	_ = UploadCmd.MarkFlagRequired("name")
	_ = UploadCmd.MarkFlagRequired("category")
}
