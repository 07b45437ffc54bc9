package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/ksyq12/apachemgr/internal/template"
	"github.com/spf13/cobra"
)

var (
	addScript     string
	addServerName string
	addProcesses  int
	addEnable     bool
)

var addCmd = &cobra.Command{
	Use:   "add <site>",
	Short: "Write a WSGI virtual-host config for a site",
	Long: `Render a minimal WSGI virtual-host config into the resolved config
directory. Ownership defaults come from the configured user/group pair
(APACHE_USER / APACHE_GROUP).

Examples:
  apachemgr add horizon --script /opt/horizon/horizon.wsgi
  apachemgr add horizon --script /opt/horizon/horizon.wsgi --enable`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addScript, "script", "", "Absolute path to the WSGI script (required)")
	addCmd.Flags().StringVar(&addServerName, "server-name", "", "ServerName for the vhost (defaults to site name)")
	addCmd.Flags().IntVar(&addProcesses, "processes", 2, "WSGI daemon processes")
	addCmd.Flags().BoolVar(&addEnable, "enable", false, "Enable the site after writing the config")
	_ = addCmd.MarkFlagRequired("script")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	cfg, r, err := loadResolver()
	if err != nil {
		return err
	}

	content, err := template.RenderWSGI(template.Data{
		Site:       site,
		ServerName: addServerName,
		Script:     addScript,
		User:       cfg.User,
		Group:      cfg.Group,
		Processes:  addProcesses,
		LogDir:     r.Identity().LogDir,
	})
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if dryRun {
		output.Info("Would write site config for %s:", site)
		output.Print("%s", content)
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	path, err := r.WriteSiteConfig(site, content, cfg.User, cfg.Group)
	if err != nil {
		return err
	}

	if addEnable {
		if err := r.EnableSite(site); err != nil {
			return fmt.Errorf("config written but enable failed: %w", err)
		}
		if err := reloadAfterChange(r, !noReload); err != nil {
			return err
		}
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    site,
			"path":    path,
			"enabled": addEnable,
		},
		"Site %s written to %s", site, path,
	)
}
