package apache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/executor"
	"github.com/ksyq12/apachemgr/internal/logger"
	"github.com/ksyq12/apachemgr/internal/pkgmgr"
	"github.com/ksyq12/apachemgr/internal/service"
)

// disabledSuffix marks a parked site config on families without an
// enable/disable mechanism of their own.
const disabledSuffix = ".disabled"

// Site describes a virtual-host configuration unit and its enablement state.
type Site struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Enabled bool   `json:"enabled"`
}

// Resolver binds a distro family and its resolved identity to the
// package-manager and service-controller collaborators.
type Resolver struct {
	family distro.Family
	id     Identity
	exec   executor.CommandExecutor
	pkgs   pkgmgr.Manager
	svc    service.Controller
}

// NewResolver creates a resolver for the given family and identity.
func NewResolver(family distro.Family, id Identity, exec executor.CommandExecutor, pkgs pkgmgr.Manager, svc service.Controller) *Resolver {
	return &Resolver{
		family: family,
		id:     id,
		exec:   exec,
		pkgs:   pkgs,
		svc:    svc,
	}
}

// Family returns the distro family the resolver was built for.
func (r *Resolver) Family() distro.Family {
	return r.family
}

// Identity returns the resolved Apache identity.
func (r *Resolver) Identity() Identity {
	return r.id
}

// Service returns the service controller.
func (r *Resolver) Service() service.Controller {
	return r.svc
}

// Packages returns the package manager.
func (r *Resolver) Packages() pkgmgr.Manager {
	return r.pkgs
}

// normalizeSite strips a trailing .conf so site arguments are
// suffix-insensitive, matching the a2ensite behavior.
func normalizeSite(site string) string {
	return strings.TrimSuffix(site, ".conf")
}

// enabledPath is the canonical config file path for a site.
func (r *Resolver) enabledPath(site string) string {
	return filepath.Join(r.id.ConfigDir, normalizeSite(site)+".conf")
}

// SiteConfigPath returns the config file path for a site.
//
// On ubuntu the path under sites-available is returned whether or not
// the file exists; enablement is a symlink concern owned by a2ensite.
// On fedora/suse the enabled path is returned only if that file exists
// on disk right now, otherwise the .disabled variant. The result
// reflects mutable filesystem state and must not be cached.
func (r *Resolver) SiteConfigPath(site string) string {
	enabled := r.enabledPath(site)
	if r.family == distro.Ubuntu {
		return enabled
	}
	if fileExists(enabled) {
		return enabled
	}
	return enabled + disabledSuffix
}

// EnableSite activates a site. Idempotent: enabling an already-enabled
// site, or one with no config file at all, is a silent no-op on
// fedora/suse.
func (r *Resolver) EnableSite(site string) error {
	site = normalizeSite(site)

	switch r.family {
	case distro.Ubuntu:
		out, err := r.exec.Execute("a2ensite", site)
		if err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, site,
				fmt.Sprintf("a2ensite failed: %s", strings.TrimSpace(string(out))), err)
		}
		return nil

	case distro.Fedora, distro.Suse:
		enabled := r.enabledPath(site)
		disabled := enabled + disabledSuffix

		if !fileExists(disabled) || fileExists(enabled) {
			// Already enabled, or no config to enable. Not an error.
			logger.Debug("enable %s: nothing to do", site)
			return nil
		}
		if err := os.Rename(disabled, enabled); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, site, "failed to enable site", err)
		}
		return nil

	default:
		return errors.UnsupportedDistro(r.family.String())
	}
}

// DisableSite deactivates a site. Idempotent: disabling a site that is
// already disabled or has no config is a silent no-op on fedora/suse.
func (r *Resolver) DisableSite(site string) error {
	site = normalizeSite(site)

	switch r.family {
	case distro.Ubuntu:
		out, err := r.exec.Execute("a2dissite", site)
		if err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, site,
				fmt.Sprintf("a2dissite failed: %s", strings.TrimSpace(string(out))), err)
		}
		return nil

	case distro.Fedora, distro.Suse:
		enabled := r.enabledPath(site)

		if !fileExists(enabled) {
			logger.Debug("disable %s: nothing to do", site)
			return nil
		}
		if err := os.Rename(enabled, enabled+disabledSuffix); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, site, "failed to disable site", err)
		}
		return nil

	default:
		return errors.UnsupportedDistro(r.family.String())
	}
}

// IsSiteEnabled reports whether a site is currently enabled.
func (r *Resolver) IsSiteEnabled(site string) (bool, error) {
	site = normalizeSite(site)

	switch r.family {
	case distro.Ubuntu:
		// a2query exits non-zero when the site is not enabled
		_, err := r.exec.Execute("a2query", "-s", site)
		return err == nil, nil

	case distro.Fedora, distro.Suse:
		return fileExists(r.enabledPath(site)), nil

	default:
		return false, errors.UnsupportedDistro(r.family.String())
	}
}

// ListSites enumerates the site configs under the config directory,
// sorted by name. Both enabled and parked configs are included.
func (r *Resolver) ListSites() ([]Site, error) {
	entries, err := os.ReadDir(r.id.ConfigDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Site{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read config directory", err)
	}

	var sites []Site
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		switch {
		case strings.HasSuffix(name, ".conf"+disabledSuffix):
			site := strings.TrimSuffix(name, ".conf"+disabledSuffix)
			sites = append(sites, Site{
				Name:    site,
				Path:    filepath.Join(r.id.ConfigDir, name),
				Enabled: false,
			})
		case strings.HasSuffix(name, ".conf"):
			site := strings.TrimSuffix(name, ".conf")
			enabled := true
			if r.family == distro.Ubuntu {
				enabled, _ = r.IsSiteEnabled(site)
			}
			sites = append(sites, Site{
				Name:    site,
				Path:    filepath.Join(r.id.ConfigDir, name),
				Enabled: enabled,
			})
		}
	}

	sort.Slice(sites, func(i, j int) bool { return sites[i].Name < sites[j].Name })
	return sites, nil
}

// WriteSiteConfig writes a site config file into the config directory
// and applies the ownership pair when one is configured. On fedora/suse
// an existing parked (.disabled) variant is replaced so a site cannot
// end up with both files.
func (r *Resolver) WriteSiteConfig(site, content, owner, group string) (string, error) {
	site = normalizeSite(site)

	if err := os.MkdirAll(r.id.ConfigDir, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to create config directory", err)
	}

	path := r.enabledPath(site)
	if r.family != distro.Ubuntu {
		if parked := path + disabledSuffix; fileExists(parked) {
			if err := os.Remove(parked); err != nil {
				return "", errors.WrapSite(errors.ErrCodeInternal, site, "failed to replace parked config", err)
			}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.WrapSite(errors.ErrCodeInternal, site, "failed to write site config", err)
	}

	if owner != "" {
		if group == "" {
			group = owner
		}
		out, err := r.exec.Execute("chown", owner+":"+group, path)
		if err != nil {
			logger.Warn("failed to chown %s: %s", path, strings.TrimSpace(string(out)))
		}
	}

	return path, nil
}

// fileExists reports whether path exists as a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
