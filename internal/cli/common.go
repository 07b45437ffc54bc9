package cli

import (
	"fmt"
	"strings"

	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/config"
	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/output"
)

// loadResolver loads the config, resolves the distro family and builds
// the resolver every command works through.
func loadResolver() (*config.Config, *apache.Resolver, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	family := distro.Parse(cfg.Family)
	if cfg.Family == "" {
		family, err = deps.FamilyDetector.Detect()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to detect distro family: %w", err)
		}
	}

	r, err := deps.ResolverBuilder.Build(family, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, r, nil
}

// requireRoot checks for root privileges before a mutating operation.
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// reloadAfterChange reloads the service unless --no-reload was given.
func reloadAfterChange(r *apache.Resolver, reload bool) error {
	if !reload {
		return nil
	}
	output.Info("Reloading %s...", r.Identity().Service)
	if err := r.Service().Reload(); err != nil {
		return fmt.Errorf("failed to reload %s: %w", r.Identity().Service, err)
	}
	return nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validateSite checks if a site name is valid. A trailing .conf is
// accepted; everything else path-like is not.
func validateSite(site string) error {
	if site == "" {
		return fmt.Errorf("site name cannot be empty")
	}
	if strings.Contains(site, " ") {
		return fmt.Errorf("site name cannot contain spaces")
	}
	if strings.Contains(site, "/") {
		return fmt.Errorf("site name cannot contain path separators")
	}
	if strings.HasPrefix(site, ".") {
		return fmt.Errorf("site name cannot start with a dot")
	}
	return nil
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Site    string `json:"site"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}
