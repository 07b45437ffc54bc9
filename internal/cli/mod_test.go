package cli

import (
	goerrors "errors"
	"testing"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/service"
)

func TestRunModUbuntuEnables(t *testing.T) {
	r, mockExec, _ := setupTestDeps(t, distro.Ubuntu)
	mockExec.ExecuteFunc = func(name string, args ...string) ([]byte, error) {
		if name == "a2query" {
			return []byte("No module matches wsgi"), goerrors.New("exit status 1")
		}
		return nil, nil
	}

	if err := runMod(modCmd, []string{"wsgi"}); err != nil {
		t.Fatalf("mod failed: %v", err)
	}

	// enable happens through a2enmod and triggers a restart
	found := false
	for _, call := range mockExec.Calls {
		if call.Name == "a2enmod" {
			found = true
		}
	}
	if !found {
		t.Error("expected a2enmod call")
	}

	svc := r.Service().(*service.Mock)
	if len(svc.Ops) != 2 || svc.Ops[0] != "stop" || svc.Ops[1] != "start" {
		t.Errorf("expected restart after enable, got %v", svc.Ops)
	}
}

func TestRunModFedoraNoop(t *testing.T) {
	r, mockExec, _ := setupTestDeps(t, distro.Fedora)

	if err := runMod(modCmd, []string{"wsgi"}); err != nil {
		t.Fatalf("mod failed: %v", err)
	}

	if len(mockExec.Calls) != 0 {
		t.Errorf("fedora mod enable should run no commands, got %d", len(mockExec.Calls))
	}
	svc := r.Service().(*service.Mock)
	if len(svc.Ops) != 0 {
		t.Errorf("no restart expected, got %v", svc.Ops)
	}
}

func TestRunModQuery(t *testing.T) {
	_, _, _ = setupTestDeps(t, distro.Fedora)
	modQuery = true

	if err := runMod(modCmd, []string{"wsgi"}); err != nil {
		t.Fatalf("mod --query failed: %v", err)
	}
}

func TestRunModQueryDoesNotMutate(t *testing.T) {
	r, mockExec, _ := setupTestDeps(t, distro.Ubuntu)
	modQuery = true
	mockExec.ExecuteFunc = func(name string, args ...string) ([]byte, error) {
		return nil, goerrors.New("exit status 1")
	}

	if err := runMod(modCmd, []string{"wsgi"}); err != nil {
		t.Fatalf("mod --query failed: %v", err)
	}

	for _, call := range mockExec.Calls {
		if call.Name == "a2enmod" {
			t.Error("query must not enable the module")
		}
	}
	svc := r.Service().(*service.Mock)
	if len(svc.Ops) != 0 {
		t.Errorf("query must not restart, got %v", svc.Ops)
	}
}

func TestRunModDryRun(t *testing.T) {
	r, mockExec, _ := setupTestDeps(t, distro.Suse)
	dryRun = true

	if err := runMod(modCmd, []string{"wsgi"}); err != nil {
		t.Fatalf("dry-run mod failed: %v", err)
	}

	if len(mockExec.Calls) != 0 {
		t.Errorf("dry-run should run no commands, got %d", len(mockExec.Calls))
	}
	_ = r
}
