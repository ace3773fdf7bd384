package jsign

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRunLaunchFailure(t *testing.T) {
	dir := t.TempDir()
	o := baseOptions(filepath.Join(dir, "doc.pdf"))
	o.JavaPath = filepath.Join(dir, "no-such-java")
	o.JarPath = filepath.Join(dir, "JSignPdf.jar")

	res := Runner{}.Run(context.Background(), o)
	if res.Outcome != OutcomeLaunchFailed {
		t.Fatalf("outcome=%v want OutcomeLaunchFailed", res.Outcome)
	}
	if res.Err == nil {
		t.Fatal("expected a launch error")
	}
	if res.JobID == "" {
		t.Fatal("expected a job id")
	}
	if res.Command[0] != o.JavaPath {
		t.Fatalf("command[0]=%q want %q", res.Command[0], o.JavaPath)
	}
}

func TestRunToolFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the unix false(1) binary")
	}
	o := baseOptions(filepath.Join(t.TempDir(), "doc.pdf"))
	o.JavaPath = "false"

	res := Runner{}.Run(context.Background(), o)
	if res.Outcome != OutcomeToolFailed {
		t.Fatalf("outcome=%v want OutcomeToolFailed", res.Outcome)
	}
	if res.Err == nil {
		t.Fatal("expected an exit error")
	}
}

func TestRunSigned(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the unix true(1) binary")
	}
	dir := t.TempDir()
	o := baseOptions(filepath.Join(dir, "doc.pdf"))
	o.JavaPath = "true"

	res := Runner{}.Run(context.Background(), o)
	if res.Outcome != OutcomeSigned {
		t.Fatalf("outcome=%v want OutcomeSigned, err=%v", res.Outcome, res.Err)
	}
	if res.OutputExists {
		t.Fatal("output must not be reported before the tool writes it")
	}
	if want := filepath.Join(dir, "doc_signed.pdf"); res.OutputPath != want {
		t.Fatalf("output path=%q want %q", res.OutputPath, want)
	}

	// With the expected output in place the run is verified.
	if err := os.WriteFile(res.OutputPath, []byte("%PDF"), 0600); err != nil {
		t.Fatal(err)
	}
	res = Runner{}.Run(context.Background(), o)
	if res.Outcome != OutcomeSigned || !res.OutputExists {
		t.Fatalf("outcome=%v exists=%v want signed and verified", res.Outcome, res.OutputExists)
	}
}
