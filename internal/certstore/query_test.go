package certstore

import (
	"context"
	"reflect"
	"runtime"
	"testing"
	"time"
)

func TestCommandListerMissingCommand(t *testing.T) {
	l := &CommandLister{Command: []string{"/definitely/not/a/real/command"}}
	got, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("a failed query must not surface an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no aliases, got %v", got)
	}
}

func TestCommandListerParsesSubjects(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	l := &CommandLister{Command: []string{
		"sh", "-c", "printf 'CN=Alice, O=X\\nCN=Bob\\n\\nCN=Alice\\n'",
	}}
	got, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Alice", "Bob"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List=%v want %v", got, want)
	}
}

func TestCommandListerTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	l := &CommandLister{
		Command: []string{"sh", "-c", "sleep 5"},
		Timeout: 50 * time.Millisecond,
	}
	start := time.Now()
	got, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("a timed-out query must not surface an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no aliases, got %v", got)
	}
	if time.Since(start) > 3*time.Second {
		t.Fatal("timeout was not applied")
	}
}

func TestDefaultQueryCommand(t *testing.T) {
	cmd := DefaultQueryCommand()
	if runtime.GOOS == "windows" {
		if len(cmd) == 0 || cmd[0] != "powershell" {
			t.Fatalf("unexpected windows query command: %v", cmd)
		}
		return
	}
	if cmd != nil {
		t.Fatalf("expected no default command on %s, got %v", runtime.GOOS, cmd)
	}
}
