package apache

import (
	"fmt"
	"strings"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/logger"
)

// IsModEnabled reports whether an Apache module is enabled.
// On fedora every packaged module is enabled, so the query always
// succeeds there.
func (r *Resolver) IsModEnabled(mod string) (bool, error) {
	switch r.family {
	case distro.Ubuntu:
		// a2query exits non-zero for disabled or unknown modules
		_, err := r.exec.Execute("a2query", "-m", mod)
		return err == nil, nil

	case distro.Suse:
		_, err := r.exec.Execute("a2enmod", "-q", mod)
		return err == nil, nil

	case distro.Fedora:
		return true, nil

	default:
		return false, errors.UnsupportedDistro(r.family.String())
	}
}

// EnableMod enables an Apache module. Idempotent: a module that is
// already enabled is left alone. Enabling a module requires a full
// restart, not a reload, for it to be picked up.
//
// On fedora modules ship pre-enabled via package installation, so this
// is a no-op there.
func (r *Resolver) EnableMod(mod string) error {
	switch r.family {
	case distro.Ubuntu, distro.Suse:
		enabled, err := r.IsModEnabled(mod)
		if err != nil {
			return err
		}
		if enabled {
			logger.Debug("mod %s already enabled", mod)
			return nil
		}

		out, err := r.exec.Execute("a2enmod", mod)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("a2enmod %s failed: %s", mod, strings.TrimSpace(string(out))), err)
		}

		logger.Info("enabled mod %s, restarting %s", mod, r.id.Service)
		return r.svc.Restart()

	case distro.Fedora:
		return nil

	default:
		return errors.UnsupportedDistro(r.family.String())
	}
}
