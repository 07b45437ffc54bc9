package cli

import (
	"fmt"
	"os"

	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the host and Apache configuration.

Checks:
  - Distro family detection
  - Apache package installation
  - Service state
  - Config directory presence
  - wsgi module status
  - Virtual host enablement

Examples:
  apachemgr doctor
  apachemgr doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	System []CheckResult `json:"system"`
	Sites  []apache.Site `json:"sites"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	report := &DoctorReport{}
	report.System = checkSystem(r)

	sites, err := r.ListSites()
	if err != nil {
		report.System = append(report.System, CheckResult{
			Status:  "error",
			Message: fmt.Sprintf("Failed to list sites: %v", err),
		})
	} else {
		report.Sites = sites
	}

	if jsonOutput {
		return output.JSON(report)
	}

	printDoctorReport(report)
	return nil
}

func checkSystem(r *apache.Resolver) []CheckResult {
	var checks []CheckResult

	id := r.Identity()
	checks = append(checks, CheckResult{
		Status:  "success",
		Message: fmt.Sprintf("Distro family: %s (service %s)", r.Family(), id.Service),
	})

	if r.Service().IsActive() {
		checks = append(checks, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Service %s is active", id.Service),
		})
	} else {
		checks = append(checks, CheckResult{
			Status:  "warning",
			Message: fmt.Sprintf("Service %s is not active", id.Service),
		})
	}

	if info, err := os.Stat(id.ConfigDir); err == nil && info.IsDir() {
		checks = append(checks, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Config directory exists: %s", id.ConfigDir),
		})
	} else {
		checks = append(checks, CheckResult{
			Status:  "error",
			Message: fmt.Sprintf("Config directory missing: %s", id.ConfigDir),
		})
	}

	if enabled, err := r.IsModEnabled("wsgi"); err == nil && enabled {
		checks = append(checks, CheckResult{
			Status:  "success",
			Message: "Mod wsgi is enabled",
		})
	} else {
		checks = append(checks, CheckResult{
			Status:  "warning",
			Message: "Mod wsgi is not enabled (run 'apachemgr install')",
		})
	}

	return checks
}

func printDoctorReport(report *DoctorReport) {
	output.Print("System")
	output.Print("------")
	for _, c := range report.System {
		switch c.Status {
		case "success":
			output.Success("%s", c.Message)
		case "warning":
			output.Warn("%s", c.Message)
		default:
			output.Error("%s", c.Message)
		}
	}

	output.Print("")
	output.Print("Sites")
	output.Print("-----")
	if len(report.Sites) == 0 {
		output.Info("No sites configured")
		return
	}
	for _, s := range report.Sites {
		if s.Enabled {
			output.Success("%s (enabled)", s.Name)
		} else {
			output.Warn("%s (disabled)", s.Name)
		}
	}
}
