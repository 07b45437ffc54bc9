package cli

import (
	"os"

	"github.com/ksyq12/apachemgr/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	dryRun     bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "apachemgr",
	Short: "Apache deployment management CLI",
	Long: `apachemgr installs and manages an Apache HTTP server across Ubuntu,
Fedora/RHEL and SUSE hosts.

It resolves the distro-specific service name, package names and config
directories once, then provides commands to install Apache with the WSGI
adapter, enable modules, enable/disable virtual-host sites, and control
the service lifecycle.`,
}

// Execute runs the root command
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
}
