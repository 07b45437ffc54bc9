// Package apache resolves distro-specific Apache configuration and wraps
// the site, module and installation operations built on top of it.
//
// The three supported families disagree on almost everything: the
// service name (apache2 vs httpd), where virtual-host configs live, and
// how a site is switched on. Ubuntu delegates enablement to the
// a2ensite/a2dissite symlink tooling; Fedora and SUSE have no such
// mechanism, so this package follows the established convention of
// renaming {site}.conf to {site}.conf.disabled and back.
//
// All of the variance is captured once, in the identity table:
//
//	id, err := apache.ResolveIdentity(distro.Fedora, config.Overrides{})
//	// id.Service == "httpd", id.ConfigDir == "/etc/httpd/conf.d"
//
// A Resolver combines the identity with the package manager and service
// controller collaborators:
//
//	r := apache.NewResolver(distro.Fedora, id, exec, pkgs, svc)
//	path := r.SiteConfigPath("horizon") // reflects live enablement state
//	err = r.EnableSite("horizon")       // idempotent, no-op if absent
//
// Enablement state lives on the filesystem and is mutable behind our
// back, so SiteConfigPath is recomputed on every call and never cached.
package apache
