package jsign

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies a finished signing job.
type Outcome int

const (
	// OutcomeSigned means the tool exited zero.
	OutcomeSigned Outcome = iota
	// OutcomeToolFailed means the tool ran and exited non-zero.
	OutcomeToolFailed
	// OutcomeLaunchFailed means the tool could not be started at all.
	OutcomeLaunchFailed
)

// Result captures one signing job. The tool's exit code is the
// authoritative success signal; OutputExists only refines the report.
type Result struct {
	JobID   string
	Command []string
	Outcome Outcome
	Err     error

	Stdout string
	Stderr string
	Notes  []string

	OutputPath   string
	OutputExists bool
	Duration     time.Duration
}

// Runner executes JSignPdf as a subprocess. One invocation per job, no
// timeout and no cancellation once started.
type Runner struct{}

func (Runner) Run(ctx context.Context, o Options) Result {
	argv, notes := Args(o, time.Now())

	java := strings.TrimSpace(o.JavaPath)
	if java == "" {
		java = "java"
	}
	args := append([]string{"-jar", o.JarPath}, argv...)

	res := Result{
		JobID:      uuid.NewString(),
		Command:    append([]string{java}, args...),
		Notes:      notes,
		OutputPath: OutputPath(o),
	}

	log.Printf("DEBUG: signing job %s: %s", res.JobID, strings.Join(res.Command, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, java, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = strings.TrimSpace(stdout.String())
	res.Stderr = strings.TrimSpace(stderr.String())

	switch {
	case err == nil:
		res.Outcome = OutcomeSigned
	default:
		res.Err = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Outcome = OutcomeToolFailed
		} else {
			res.Outcome = OutcomeLaunchFailed
		}
	}

	if res.Outcome == OutcomeSigned {
		if _, err := os.Stat(res.OutputPath); err == nil {
			res.OutputExists = true
		}
	}

	return res
}
