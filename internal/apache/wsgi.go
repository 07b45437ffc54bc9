package apache

import (
	"os"
	"path/filepath"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/logger"
)

// Package names per family. The ubuntu WSGI adapter comes in a legacy
// (Python 2) and a -py3 variant that conflict with each other; fedora
// and suse ship a single package.
const (
	pkgApacheDeb  = "apache2"
	pkgWSGIDeb    = "libapache2-mod-wsgi"
	pkgWSGIDebPy3 = "libapache2-mod-wsgi-py3"

	pkgApacheRPM = "httpd"
	pkgWSGIRPM   = "mod_wsgi"

	pkgApacheSuse = "apache2"
	pkgWSGISuse   = "apache2-mod_wsgi"
)

// LegacyWSGIPackage returns the conflicting legacy WSGI package that
// must be removed before a Python-3 install on this family, or "" when
// no such conflict exists.
func (r *Resolver) LegacyWSGIPackage(python3 bool) string {
	if r.family == distro.Ubuntu && python3 && r.pkgs.IsInstalled(pkgWSGIDeb) {
		return pkgWSGIDeb
	}
	return ""
}

// InstallWSGI installs the Apache server package and the WSGI adapter
// module appropriate to the distro and Python major version, then
// enables the wsgi module. The module enablement always runs, whatever
// install branch executed.
func (r *Resolver) InstallWSGI(python3 bool) error {
	switch r.family {
	case distro.Ubuntu:
		if err := r.pkgs.Install(pkgApacheDeb); err != nil {
			return err
		}
		if python3 {
			// The legacy adapter conflicts with the -py3 variant and
			// has to go first.
			if r.pkgs.IsInstalled(pkgWSGIDeb) {
				if err := r.pkgs.Remove(pkgWSGIDeb); err != nil {
					return err
				}
			}
			if err := r.pkgs.Install(pkgWSGIDebPy3); err != nil {
				return err
			}
		} else {
			if err := r.pkgs.Install(pkgWSGIDeb); err != nil {
				return err
			}
		}

	case distro.Fedora:
		if err := r.removeDefaultSiteFragments(); err != nil {
			return err
		}
		if err := r.pkgs.Install(pkgApacheRPM, pkgWSGIRPM); err != nil {
			return err
		}

	case distro.Suse:
		if err := r.pkgs.Install(pkgApacheSuse, pkgWSGISuse); err != nil {
			return err
		}

	default:
		return errors.UnsupportedDistro(r.family.String())
	}

	return r.EnableMod("wsgi")
}

// removeDefaultSiteFragments clears the stock 000-* site fragments the
// fedora httpd package drops into conf.d; they bind the default vhost
// and shadow anything this tool writes.
func (r *Resolver) removeDefaultSiteFragments() error {
	matches, err := filepath.Glob(filepath.Join(r.id.ConfigDir, "000-*"))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to glob default site fragments", err)
	}

	for _, path := range matches {
		logger.Debug("removing default site fragment %s", path)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeInternal, "failed to remove default site fragment", err)
		}
	}
	return nil
}
