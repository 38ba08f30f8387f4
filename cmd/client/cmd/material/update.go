package material

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ministry/internal/app/client"
	"ministry/internal/domain/material"
)

var (
	updateName        string
	updateDescription string
	updateCategory    string
	updateStatus      string
	updateFile        string
)

var UpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update fields of a service material",
	Long: `Sends only the flags that were given. Pass --description "" to clear
the description.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		var req client.UpdateRequest
		flags := cmd.Flags()
		if flags.Changed("name") {
			req.Name = &updateName
		}
		if flags.Changed("description") {
			req.Description = &updateDescription
		}
		if flags.Changed("category") {
			req.Category = &updateCategory
		}
		if flags.Changed("status") {
			status := material.Status(updateStatus)
			req.Status = &status
		}
		req.File = updateFile

		if req.Name == nil && req.Description == nil && req.Category == nil && req.Status == nil && req.File == "" {
			return errors.New("nothing to update")
		}

		m, err := app.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d (%s)\n", m.ID, client.StatusBadge(m.Status))
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateName, "name", "n", "", "new name")
	UpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	UpdateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category slug")
	UpdateCmd.Flags().StringVar(&updateStatus, "status", "", "up-to-date or not-up-to-date")
	UpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "replacement file")
}
