package cli

import (
	"testing"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/input"
	"github.com/ksyq12/apachemgr/internal/pkgmgr"
)

func TestRunInstallFedora(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Fedora)

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	pkgs := r.Packages().(*pkgmgr.Mock)
	if !pkgs.IsInstalled("httpd") || !pkgs.IsInstalled("mod_wsgi") {
		t.Errorf("expected httpd and mod_wsgi installed, got %v", pkgs.Installed)
	}
}

func TestRunInstallUbuntuPython3(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Ubuntu)

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	pkgs := r.Packages().(*pkgmgr.Mock)
	if !pkgs.IsInstalled("apache2") || !pkgs.IsInstalled("libapache2-mod-wsgi-py3") {
		t.Errorf("expected apache2 and py3 wsgi installed, got %v", pkgs.Installed)
	}
}

func TestRunInstallUbuntuPython2Flag(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Ubuntu)
	installPython2 = true

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	pkgs := r.Packages().(*pkgmgr.Mock)
	if !pkgs.IsInstalled("libapache2-mod-wsgi") {
		t.Error("expected legacy wsgi package installed")
	}
	if pkgs.IsInstalled("libapache2-mod-wsgi-py3") {
		t.Error("py3 variant should not be installed with --python2")
	}
}

func TestRunInstallPromptsBeforeLegacyRemoval(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		r, _, _ := setupTestDeps(t, distro.Ubuntu)
		r.Packages().(*pkgmgr.Mock).Installed["libapache2-mod-wsgi"] = true
		deps.StdinReader = input.NewStringReader("yes\n")

		if err := runInstall(installCmd, nil); err != nil {
			t.Fatalf("install failed: %v", err)
		}

		pkgs := r.Packages().(*pkgmgr.Mock)
		if pkgs.IsInstalled("libapache2-mod-wsgi") {
			t.Error("legacy package should have been removed after confirmation")
		}
	})

	t.Run("refused", func(t *testing.T) {
		r, _, _ := setupTestDeps(t, distro.Ubuntu)
		r.Packages().(*pkgmgr.Mock).Installed["libapache2-mod-wsgi"] = true
		deps.StdinReader = input.NewStringReader("n\n")

		if err := runInstall(installCmd, nil); err == nil {
			t.Fatal("refused prompt should abort the install")
		}

		pkgs := r.Packages().(*pkgmgr.Mock)
		if !pkgs.IsInstalled("libapache2-mod-wsgi") {
			t.Error("legacy package should survive a refused prompt")
		}
	})

	t.Run("yes flag skips prompt", func(t *testing.T) {
		r, _, _ := setupTestDeps(t, distro.Ubuntu)
		r.Packages().(*pkgmgr.Mock).Installed["libapache2-mod-wsgi"] = true
		installYes = true
		deps.StdinReader = input.NewStringReader() // would EOF if read

		if err := runInstall(installCmd, nil); err != nil {
			t.Fatalf("install failed: %v", err)
		}
	})
}

func TestRunInstallDryRun(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Suse)
	dryRun = true

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("dry-run install failed: %v", err)
	}

	pkgs := r.Packages().(*pkgmgr.Mock)
	if len(pkgs.Installs) != 0 {
		t.Errorf("dry-run should install nothing, got %v", pkgs.Installs)
	}
}

func TestRunInstallUnsupportedFamily(t *testing.T) {
	_, _, _ = setupTestDeps(t, distro.Unsupported)

	if err := runInstall(installCmd, nil); err == nil {
		t.Error("expected error for unsupported family")
	}
}
