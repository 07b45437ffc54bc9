package apache

import (
	"github.com/ksyq12/apachemgr/internal/config"
	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
)

// Identity is the resolved Apache configuration for a distro family:
// the service name and the directories everything else derives from.
// Resolved once at startup and constant thereafter.
type Identity struct {
	Service     string
	ConfigDir   string
	SettingsDir string
	LogDir      string
}

// identityTable is the single source of truth for family → identity.
var identityTable = map[distro.Family]Identity{
	distro.Ubuntu: {
		Service:     "apache2",
		ConfigDir:   "/etc/apache2/sites-available",
		SettingsDir: "/etc/apache2/conf-enabled",
		LogDir:      "/var/log/apache2",
	},
	distro.Fedora: {
		Service:     "httpd",
		ConfigDir:   "/etc/httpd/conf.d",
		SettingsDir: "/etc/httpd/conf.d",
		LogDir:      "/var/log/httpd",
	},
	distro.Suse: {
		Service:     "apache2",
		ConfigDir:   "/etc/apache2/vhosts.d",
		SettingsDir: "/etc/apache2/conf.d",
		LogDir:      "/var/log/apache2",
	},
}

// ResolveIdentity returns the Apache identity for a family, with any
// caller-supplied overrides applied field by field. Resolution for a
// supported family never fails.
func ResolveIdentity(family distro.Family, ov config.Overrides) (Identity, error) {
	id, ok := identityTable[family]
	if !ok {
		return Identity{}, errors.UnsupportedDistro(family.String())
	}

	if ov.Service != "" {
		id.Service = ov.Service
	}
	if ov.ConfigDir != "" {
		id.ConfigDir = ov.ConfigDir
	}
	if ov.SettingsDir != "" {
		id.SettingsDir = ov.SettingsDir
	}
	if ov.LogDir != "" {
		id.LogDir = ov.LogDir
	}

	return id, nil
}
