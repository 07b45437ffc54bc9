package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/input"
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var (
	installPython2 bool
	installYes     bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Apache and the WSGI adapter module",
	Long: `Install the Apache HTTP server package and the mod_wsgi adapter
appropriate to the host's distro family and Python major version,
then enable the wsgi module.

On Ubuntu a Python-3 install replaces a previously installed legacy
mod_wsgi package; on Fedora the stock default-site fragments are cleared
before installation.

Examples:
  apachemgr install
  apachemgr install --python2
  apachemgr install --yes`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installPython2, "python2", false, "Install the legacy Python-2 WSGI adapter")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, r, err := loadResolver()
	if err != nil {
		return err
	}

	python3 := cfg.Python3 && !installPython2

	if dryRun {
		output.Info("Would install Apache (%s family, python3=%v) and enable mod wsgi",
			r.Family(), python3)
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	// Replacing the legacy adapter is the one destructive step; ask first.
	if legacy := r.LegacyWSGIPackage(python3); legacy != "" && !installYes {
		output.Warn("Package %s conflicts with the Python-3 adapter and will be removed.", legacy)
		output.Print("Continue? [y/N]")
		if !input.Confirm(deps.StdinReader) {
			return fmt.Errorf("aborted")
		}
	}

	output.Info("Installing Apache with WSGI support...")
	if err := r.InstallWSGI(python3); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"family":  r.Family().String(),
			"service": r.Identity().Service,
			"python3": python3,
		},
		"Apache installed with wsgi module enabled (%s)", r.Identity().Service,
	)
}
