package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var (
	logsAccess bool
	logsError  bool
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs <site>",
	Short: "View logs for a virtual-host site",
	Long: `View access and error logs for a site from the resolved log
directory.

By default, shows both access and error logs.
Use --access or --error to show only one log type.

Examples:
  apachemgr logs horizon           # Show both logs
  apachemgr logs horizon --error   # Show only error log
  apachemgr logs horizon -f        # Follow logs in real-time
  apachemgr logs horizon -n 50     # Show last 50 lines`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVar(&logsAccess, "access", false, "Show access log only")
	logsCmd.Flags().BoolVar(&logsError, "error", false, "Show error log only")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 20, "Number of lines to show")

	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	logDir := r.Identity().LogDir
	accessLog := filepath.Join(logDir, site+"-access.log")
	errorLog := filepath.Join(logDir, site+"-error.log")

	showAccess := true
	showError := true
	if logsAccess && !logsError {
		showError = false
	} else if logsError && !logsAccess {
		showAccess = false
	}

	var logFiles []string
	if showAccess {
		if _, err := os.Stat(accessLog); err == nil {
			logFiles = append(logFiles, accessLog)
		} else {
			output.Warn("Access log not found: %s", accessLog)
		}
	}
	if showError {
		if _, err := os.Stat(errorLog); err == nil {
			logFiles = append(logFiles, errorLog)
		} else {
			output.Warn("Error log not found: %s", errorLog)
		}
	}

	if len(logFiles) == 0 {
		return fmt.Errorf("no log files found for %s", site)
	}

	tailArgs := []string{}
	if logsFollow {
		tailArgs = append(tailArgs, "-f")
	}
	tailArgs = append(tailArgs, "-n", fmt.Sprintf("%d", logsLines))
	tailArgs = append(tailArgs, logFiles...)

	tailPath, err := exec.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found")
	}

	if len(logFiles) == 1 {
		output.Info("Showing logs from: %s", logFiles[0])
	} else {
		output.Info("Showing logs from:")
		for _, f := range logFiles {
			output.Print("  - %s", f)
		}
	}
	output.Print("")

	tailCmd := exec.Command(tailPath, tailArgs...)
	tailCmd.Stdin = os.Stdin
	tailCmd.Stdout = os.Stdout
	tailCmd.Stderr = os.Stderr

	if err := tailCmd.Run(); err != nil {
		// 130 = SIGINT/Ctrl+C, 143 = SIGTERM while following
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode := exitErr.ExitCode()
			if exitCode == 130 || exitCode == 143 {
				return nil
			}
		}
		return fmt.Errorf("failed to read logs: %w", err)
	}

	return nil
}
