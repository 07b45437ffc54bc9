// Package distro identifies the distribution family of the running host.
//
// Apache packaging conventions split Linux distributions into three
// families: Debian/Ubuntu (apache2 + a2ensite tooling), Fedora/RHEL
// (httpd, conf.d drop-ins) and SUSE (apache2, vhosts.d). Everything in
// this tool branches on the Family value resolved here, exactly once,
// at process start.
package distro

import (
	"fmt"
	"os"
	"strings"
)

// Family is the OS packaging/service-management convention a host follows.
type Family int

// Supported distribution families.
const (
	Unsupported Family = iota
	Ubuntu
	Fedora
	Suse
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Ubuntu:
		return "ubuntu"
	case Fedora:
		return "fedora"
	case Suse:
		return "suse"
	default:
		return "unsupported"
	}
}

// Supported reports whether the family has Apache packaging support.
func (f Family) Supported() bool {
	return f == Ubuntu || f == Fedora || f == Suse
}

// Parse converts a family name to a Family value.
// Unknown names map to Unsupported, never an error.
func Parse(name string) Family {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ubuntu", "debian":
		return Ubuntu
	case "fedora", "rhel", "centos":
		return Fedora
	case "suse", "opensuse", "sles":
		return Suse
	default:
		return Unsupported
	}
}

// osReleasePath is the standard os-release location on modern Linux.
const osReleasePath = "/etc/os-release"

// Detect resolves the host's distribution family from /etc/os-release.
func Detect() (Family, error) {
	return DetectFile(osReleasePath)
}

// DetectFile resolves the distribution family from an os-release file at
// the given path. Split out from Detect so tests can point it at a fixture.
func DetectFile(path string) (Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Unsupported, fmt.Errorf("failed to read os-release: %w", err)
	}

	id, idLike := parseOSRelease(string(data))

	if f := classify(id); f != Unsupported {
		return f, nil
	}

	// Fall back to ID_LIKE for derivatives (linuxmint, rocky, leap, ...)
	for _, like := range idLike {
		if f := classify(like); f != Unsupported {
			return f, nil
		}
	}

	return Unsupported, nil
}

// parseOSRelease extracts the ID and ID_LIKE fields from os-release content.
func parseOSRelease(content string) (id string, idLike []string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)

		switch key {
		case "ID":
			id = value
		case "ID_LIKE":
			idLike = strings.Fields(value)
		}
	}
	return id, idLike
}

// classify maps an os-release ID (or ID_LIKE entry) to a family.
func classify(id string) Family {
	switch strings.ToLower(id) {
	case "ubuntu", "debian", "pop", "linuxmint", "elementary":
		return Ubuntu
	case "fedora", "rhel", "centos", "rocky", "almalinux":
		return Fedora
	case "suse", "opensuse", "opensuse-leap", "opensuse-tumbleweed", "sles", "sled":
		return Suse
	default:
		return Unsupported
	}
}
