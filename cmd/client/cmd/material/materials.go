package material

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// MaterialsCmd is the parent of every service material command.
var MaterialsCmd = &cobra.Command{
	Use:     "materials",
	Aliases: []string{"m"},
	Short:   "Manage service materials",
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
