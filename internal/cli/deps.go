package cli

import (
	"bufio"
	"os"

	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/config"
	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/executor"
	"github.com/ksyq12/apachemgr/internal/pkgmgr"
	"github.com/ksyq12/apachemgr/internal/service"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader    ConfigLoader
	FamilyDetector  FamilyDetector
	ResolverBuilder ResolverBuilder
	RootChecker     RootChecker
	StdinReader     StdinReader
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// FamilyDetector resolves the host's distro family
type FamilyDetector interface {
	Detect() (distro.Family, error)
}

// ResolverBuilder wires a resolver for a family and config
type ResolverBuilder interface {
	Build(family distro.Family, cfg *config.Config) (*apache.Resolver, error)
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:    &realConfigLoader{},
	FamilyDetector:  &realFamilyDetector{},
	ResolverBuilder: &realResolverBuilder{},
	RootChecker:     &realRootChecker{},
	StdinReader:     &realStdinReader{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realFamilyDetector struct{}

func (r *realFamilyDetector) Detect() (distro.Family, error) {
	return distro.Detect()
}

type realResolverBuilder struct{}

func (r *realResolverBuilder) Build(family distro.Family, cfg *config.Config) (*apache.Resolver, error) {
	id, err := apache.ResolveIdentity(family, cfg.Overrides)
	if err != nil {
		return nil, err
	}

	exec := executor.NewSystemExecutor()
	pkgs, err := pkgmgr.ForFamily(family, exec)
	if err != nil {
		return nil, err
	}
	svc := service.NewSystemd(id.Service, exec)

	return apache.NewResolver(family, id, exec, pkgs, svc), nil
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.ErrRootRequired
	}
	return nil
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
