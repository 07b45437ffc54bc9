package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ksyq12/apachemgr/internal/apache"
	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/executor"
	"github.com/ksyq12/apachemgr/internal/input"
	"github.com/ksyq12/apachemgr/internal/pkgmgr"
	"github.com/ksyq12/apachemgr/internal/service"
)

// setupTestDeps swaps the package dependencies for mocks wired around a
// temp config directory and restores everything on cleanup.
func setupTestDeps(t *testing.T, family distro.Family) (*apache.Resolver, *executor.MockExecutor, string) {
	t.Helper()

	configDir := filepath.Join(t.TempDir(), "conf.d")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	serviceName := "httpd"
	if family == distro.Ubuntu || family == distro.Suse {
		serviceName = "apache2"
	}

	id := apache.Identity{
		Service:     serviceName,
		ConfigDir:   configDir,
		SettingsDir: configDir,
		LogDir:      t.TempDir(),
	}

	mockExec := &executor.MockExecutor{}
	r := apache.NewResolver(family, id, mockExec, pkgmgr.NewMock(), &service.Mock{Name: serviceName})

	old := GetDeps()
	SetDeps(&Dependencies{
		ConfigLoader:    &MockConfigLoader{},
		FamilyDetector:  &MockFamilyDetector{Family: family},
		ResolverBuilder: &MockResolverBuilder{Resolver: r},
		RootChecker:     &MockRootChecker{},
		StdinReader:     input.NewStringReader("y\n"),
	})

	t.Cleanup(func() {
		SetDeps(old)
		dryRun = false
		jsonOutput = false
		noReload = false
		installPython2 = false
		installYes = false
		modQuery = false
		addScript = ""
		addServerName = ""
		addProcesses = 2
		addEnable = false
	})

	return r, mockExec, configDir
}

func writeSiteConf(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("<VirtualHost *:80>\n</VirtualHost>\n"), 0644); err != nil {
		t.Fatalf("failed to write site fixture: %v", err)
	}
}

func TestValidateSite(t *testing.T) {
	tests := []struct {
		site    string
		wantErr bool
	}{
		{"horizon", false},
		{"horizon.conf", false},
		{"my-site.example.com", false},
		{"", true},
		{"has space", true},
		{"../etc/passwd", true},
		{"a/b", true},
		{".hidden", true},
	}

	for _, tt := range tests {
		err := validateSite(tt.site)
		if tt.wantErr && err == nil {
			t.Errorf("validateSite(%q) should fail", tt.site)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validateSite(%q) failed: %v", tt.site, err)
		}
	}
}

func TestLoadResolverFamilyPrecedence(t *testing.T) {
	t.Run("detects when config has no family", func(t *testing.T) {
		_, _, _ = setupTestDeps(t, distro.Suse)

		_, r, err := loadResolver()
		if err != nil {
			t.Fatalf("loadResolver failed: %v", err)
		}
		if r.Family() != distro.Suse {
			t.Errorf("expected detected suse, got %s", r.Family())
		}

		builder := deps.ResolverBuilder.(*MockResolverBuilder)
		if len(builder.Families) != 1 || builder.Families[0] != distro.Suse {
			t.Errorf("builder should receive detected family, got %v", builder.Families)
		}
	})

	t.Run("config family wins over detection", func(t *testing.T) {
		_, _, _ = setupTestDeps(t, distro.Suse)

		loader := deps.ConfigLoader.(*MockConfigLoader)
		cfg, _ := loader.Load()
		cfg.Family = "fedora"

		_, _, err := loadResolver()
		if err != nil {
			t.Fatalf("loadResolver failed: %v", err)
		}

		builder := deps.ResolverBuilder.(*MockResolverBuilder)
		if len(builder.Families) != 1 || builder.Families[0] != distro.Fedora {
			t.Errorf("builder should receive config family, got %v", builder.Families)
		}
	})
}
