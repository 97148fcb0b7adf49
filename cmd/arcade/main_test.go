package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arenablitz/arcade/internal/registry"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsEveryGame(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"cyberninja", "Cyber Ninja Assault", "shadowops", "Shadow Ops"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}

func TestSnapshot(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"shadow ops score", []string{"snapshot", "shadowops", "--frames", "10"}, "Score: 10"},
		{"cyber ninja layout", []string{"snapshot", "cyberninja", "--frames", "0"}, "Level: 1"},
		{"held keys", []string{"snapshot", "shadowops", "--frames", "5", "--hold", "left,a"}, "Score: 5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if !strings.Contains(out, tc.want) {
				t.Errorf("snapshot output missing %q:\n%s", tc.want, out)
			}
			flagHold = nil
		})
	}
}

func TestSnapshotRejectsUnknownKey(t *testing.T) {
	defer func() { flagHold = nil }()
	if _, err := execute(t, "snapshot", "shadowops", "--hold", "space"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, err := newLogger("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if _, err := newLogger("DEBUG"); err != nil {
		t.Errorf("newLogger(DEBUG): %v", err)
	}
}
