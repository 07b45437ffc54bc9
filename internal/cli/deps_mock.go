package cli

import (
	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/config"
	"github.com/ksyq12/apachemgr/internal/distro"
)

// Test doubles for the CLI dependency seam. They live outside the _test
// files so every command test can share them.

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockFamilyDetector is a test double for FamilyDetector
type MockFamilyDetector struct {
	Family distro.Family
	Err    error
}

func (m *MockFamilyDetector) Detect() (distro.Family, error) {
	if m.Err != nil {
		return distro.Unsupported, m.Err
	}
	return m.Family, nil
}

// MockResolverBuilder is a test double for ResolverBuilder.
// It hands out a pre-built resolver and records the family it was
// asked for.
type MockResolverBuilder struct {
	Resolver *apache.Resolver
	Err      error
	Families []distro.Family
}

func (m *MockResolverBuilder) Build(family distro.Family, cfg *config.Config) (*apache.Resolver, error) {
	m.Families = append(m.Families, family)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Resolver, nil
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	Err error
}

func (m *MockRootChecker) RequireRoot() error {
	return m.Err
}
