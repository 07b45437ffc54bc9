package cli

import (
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List virtual-host sites",
	Long: `List all virtual-host site configs under the resolved config
directory, including parked (.disabled) ones.

Examples:
  apachemgr list
  apachemgr list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	sites, err := r.ListSites()
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"family": r.Family().String(),
			"sites":  sites,
		})
	}

	if len(sites) == 0 {
		output.Info("No sites found in %s", r.Identity().ConfigDir)
		return nil
	}

	rows := make([][]string, 0, len(sites))
	for _, s := range sites {
		status := "disabled"
		if s.Enabled {
			status = "enabled"
		}
		rows = append(rows, []string{s.Name, status, s.Path})
	}
	output.Table([]string{"SITE", "STATUS", "PATH"}, rows)
	return nil
}
