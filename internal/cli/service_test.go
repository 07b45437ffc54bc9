package cli

import (
	"testing"

	"github.com/ksyq12/apachemgr/internal/distro"
	"github.com/ksyq12/apachemgr/internal/errors"
	"github.com/ksyq12/apachemgr/internal/service"
)

func TestServiceCommands(t *testing.T) {
	tests := []struct {
		name    string
		run     func() error
		wantOps []string
	}{
		{"start", func() error { return startCmd.RunE(startCmd, nil) }, []string{"start"}},
		{"stop", func() error { return stopCmd.RunE(stopCmd, nil) }, []string{"stop"}},
		{"restart", func() error { return restartCmd.RunE(restartCmd, nil) }, []string{"stop", "start"}},
		{"reload", func() error { return reloadCmd.RunE(reloadCmd, nil) }, []string{"reload"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := setupTestDeps(t, distro.Fedora)

			if err := tt.run(); err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}

			svc := r.Service().(*service.Mock)
			if len(svc.Ops) != len(tt.wantOps) {
				t.Fatalf("expected ops %v, got %v", tt.wantOps, svc.Ops)
			}
			for i, op := range tt.wantOps {
				if svc.Ops[i] != op {
					t.Errorf("op %d: expected %s, got %s", i, op, svc.Ops[i])
				}
			}
		})
	}
}

func TestServiceCommandDryRun(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Ubuntu)
	dryRun = true

	if err := restartCmd.RunE(restartCmd, nil); err != nil {
		t.Fatalf("dry-run restart failed: %v", err)
	}

	svc := r.Service().(*service.Mock)
	if len(svc.Ops) != 0 {
		t.Errorf("dry-run should not touch the service, got %v", svc.Ops)
	}
}

func TestServiceCommandRootRequired(t *testing.T) {
	r, _, _ := setupTestDeps(t, distro.Fedora)
	deps.RootChecker = &MockRootChecker{Err: errors.ErrRootRequired}

	if err := stopCmd.RunE(stopCmd, nil); err == nil {
		t.Error("expected root check failure")
	}

	svc := r.Service().(*service.Mock)
	if len(svc.Ops) != 0 {
		t.Errorf("service should be untouched without root, got %v", svc.Ops)
	}
}
