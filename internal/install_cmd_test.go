package internal

import (
	"strings"
	"testing"

	"github.com/swiftup/swiftup/internal/initiator"
	"github.com/swiftup/swiftup/internal/logger"
)

func TestInstallCmd_ArgValidation(t *testing.T) {
	logger.UseTestMode()
	t.Setenv("HOME", t.TempDir())
	if err := initiator.New().Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "No version argument",
			args: []string{"install"},
		},
		{
			name: "Too many version arguments",
			args: []string{"install", "5.7.0", "5.6.3"},
		},
	}

	root := NewRootCmd()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root.SetArgs(tt.args)
			_, err := root.ExecuteC()

			if err == nil {
				t.Fatalf("expected error, got nil")
			}

			if !strings.Contains(err.Error(), "already logged") {
				t.Errorf("expected sentinel error, got: %v", err)
			}
		})
	}
}

func TestUninstallCmd_ArgValidation(t *testing.T) {
	logger.UseTestMode()
	t.Setenv("HOME", t.TempDir())
	if err := initiator.New().Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"uninstall"})
	_, err := root.ExecuteC()

	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "already logged") {
		t.Errorf("expected sentinel error, got: %v", err)
	}
}
