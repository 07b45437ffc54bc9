package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ksyq12/apachemgr/internal/output"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <site>",
	Short: "Edit a virtual-host site configuration file",
	Long: `Open the site configuration file in an editor.

The path follows the current enablement state on Fedora/SUSE, so a
parked (.disabled) config opens just as well as an enabled one.
Uses $EDITOR environment variable or defaults to vi.

Examples:
  apachemgr edit horizon
  EDITOR=nano apachemgr edit horizon`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	site := args[0]

	if err := validateSite(site); err != nil {
		return err
	}

	_, r, err := loadResolver()
	if err != nil {
		return err
	}

	configPath := r.SiteConfigPath(site)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	editorPath, err := exec.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor)
	}

	output.Info("Opening %s with %s...", configPath, editor)

	editCmd := exec.Command(editorPath, configPath)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr

	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	output.Success("Editor closed")
	output.Info("Run 'apachemgr reload' to apply changes")

	return nil
}
