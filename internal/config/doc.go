// Package config manages the apachemgr configuration file.
//
// Configuration lives at ~/.config/apachemgr/config.yaml and holds the
// things that cannot be derived from the host itself: an optional distro
// family override, the Python-3 WSGI preference, the ownership defaults
// for written site configs, and per-field overrides for the resolved
// Apache identity (service name and directories).
//
// A missing config file is not an error; defaults apply. The
// APACHE_USER and APACHE_GROUP environment variables (optionally loaded
// from a local .env file) take precedence over the file for the
// ownership pair.
//
// Example config.yaml:
//
//	family: fedora
//	python3: true
//	user: apache
//	overrides:
//	  config_dir: /srv/httpd/conf.d
package config
