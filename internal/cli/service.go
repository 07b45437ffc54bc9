package cli

import (
	"fmt"

	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Apache service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServiceOp("start", func(r *apache.Resolver) error {
			return r.Service().Start()
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the Apache service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServiceOp("stop", func(r *apache.Resolver) error {
			return r.Service().Stop()
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the Apache service",
	Long: `Restart the Apache service: stop, wait out a short grace interval so
the listen sockets are released, then start.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServiceOp("restart", func(r *apache.Resolver) error {
			return r.Service().Restart()
		})
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the Apache service configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServiceOp("reload", func(r *apache.Resolver) error {
			return r.Service().Reload()
		})
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(reloadCmd)
}

func runServiceOp(op string, fn func(*apache.Resolver) error) error {
	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	service := r.Identity().Service

	if dryRun {
		output.Info("Would %s %s", op, service)
		return nil
	}

	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Running %s on %s...", op, service)
	if err := fn(r); err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"service": service,
			"action":  op,
		},
		"Service %s: %s done", service, op,
	)
}
