// Package pkgmgr wraps the distro package managers behind one interface.
//
// Install/remove/query is all this tool needs; anything fancier (repos,
// pins, upgrades) belongs to the package manager itself. Failures carry
// the manager's combined output and propagate without retries.
package pkgmgr

import (
	"fmt"
	"strings"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/executor"
	"github.com/ksyq12/apachemgr/internal/logger"
)

// Manager installs, removes and queries OS packages.
type Manager interface {
	// Name returns the package manager binary name (apt-get, dnf, zypper).
	Name() string

	// Install installs the given packages in a single transaction.
	Install(pkgs ...string) error

	// Remove removes the given packages. Removing a package that is not
	// installed is not an error.
	Remove(pkgs ...string) error

	// IsInstalled reports whether a package is currently installed.
	IsInstalled(pkg string) bool
}

// ForFamily returns the package manager for a distro family.
func ForFamily(family distro.Family, exec executor.CommandExecutor) (Manager, error) {
	switch family {
	case distro.Ubuntu:
		return &aptManager{exec: exec}, nil
	case distro.Fedora:
		return &dnfManager{exec: exec}, nil
	case distro.Suse:
		return &zypperManager{exec: exec}, nil
	default:
		return nil, errors.UnsupportedDistro(family.String())
	}
}

// aptManager drives apt-get/dpkg on Debian-family hosts.
type aptManager struct {
	exec executor.CommandExecutor
}

func (m *aptManager) Name() string { return "apt-get" }

func (m *aptManager) Install(pkgs ...string) error {
	args := append([]string{"install", "-y"}, pkgs...)
	logger.Debug("apt-get %s", strings.Join(args, " "))
	out, err := m.exec.Execute("apt-get", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("apt-get install failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *aptManager) Remove(pkgs ...string) error {
	args := append([]string{"purge", "-y"}, pkgs...)
	logger.Debug("apt-get %s", strings.Join(args, " "))
	out, err := m.exec.Execute("apt-get", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("apt-get purge failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *aptManager) IsInstalled(pkg string) bool {
	// dpkg -s exits non-zero for unknown or removed packages
	out, err := m.exec.Execute("dpkg", "-s", pkg)
	if err != nil {
		return false
	}
	return strings.Contains(string(out), "Status: install ok installed")
}

// dnfManager drives dnf/rpm on Fedora-family hosts.
type dnfManager struct {
	exec executor.CommandExecutor
}

func (m *dnfManager) Name() string { return "dnf" }

func (m *dnfManager) Install(pkgs ...string) error {
	args := append([]string{"install", "-y"}, pkgs...)
	logger.Debug("dnf %s", strings.Join(args, " "))
	out, err := m.exec.Execute("dnf", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("dnf install failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *dnfManager) Remove(pkgs ...string) error {
	args := append([]string{"remove", "-y"}, pkgs...)
	logger.Debug("dnf %s", strings.Join(args, " "))
	out, err := m.exec.Execute("dnf", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("dnf remove failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *dnfManager) IsInstalled(pkg string) bool {
	_, err := m.exec.Execute("rpm", "-q", pkg)
	return err == nil
}

// zypperManager drives zypper/rpm on SUSE-family hosts.
type zypperManager struct {
	exec executor.CommandExecutor
}

func (m *zypperManager) Name() string { return "zypper" }

func (m *zypperManager) Install(pkgs ...string) error {
	args := append([]string{"--non-interactive", "install"}, pkgs...)
	logger.Debug("zypper %s", strings.Join(args, " "))
	out, err := m.exec.Execute("zypper", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("zypper install failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *zypperManager) Remove(pkgs ...string) error {
	args := append([]string{"--non-interactive", "remove"}, pkgs...)
	logger.Debug("zypper %s", strings.Join(args, " "))
	out, err := m.exec.Execute("zypper", args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackage,
			fmt.Sprintf("zypper remove failed: %s", strings.TrimSpace(string(out))), err)
	}
	return nil
}

func (m *zypperManager) IsInstalled(pkg string) bool {
	_, err := m.exec.Execute("rpm", "-q", pkg)
	return err == nil
}

// Mock is a test double for Manager.
type Mock struct {
	Installed  map[string]bool
	InstallErr error
	RemoveErr  error
	Installs   [][]string
	Removes    [][]string
}

// NewMock creates a Mock with the given packages pre-installed.
func NewMock(installed ...string) *Mock {
	m := &Mock{Installed: make(map[string]bool)}
	for _, pkg := range installed {
		m.Installed[pkg] = true
	}
	return m
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Install(pkgs ...string) error {
	m.Installs = append(m.Installs, pkgs)
	if m.InstallErr != nil {
		return m.InstallErr
	}
	for _, pkg := range pkgs {
		m.Installed[pkg] = true
	}
	return nil
}

func (m *Mock) Remove(pkgs ...string) error {
	m.Removes = append(m.Removes, pkgs)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	for _, pkg := range pkgs {
		delete(m.Installed, pkg)
	}
	return nil
}

func (m *Mock) IsInstalled(pkg string) bool {
	return m.Installed[pkg]
}
