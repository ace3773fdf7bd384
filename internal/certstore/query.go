package certstore

import (
	"context"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultQueryTimeout bounds the external store query.
const DefaultQueryTimeout = 10 * time.Second

const windowsCertQuery = "Get-ChildItem Cert:\\CurrentUser\\My | " +
	"Where-Object { $_.HasPrivateKey } | " +
	"Select-Object -ExpandProperty Subject"

// DefaultQueryCommand returns the platform's store enumeration command, or
// nil where no command prints one subject per line out of the box. On
// those platforms the native lister or a configured command takes over.
func DefaultQueryCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"powershell", "-NoProfile", "-Command", windowsCertQuery}
	}
	return nil
}

// CommandLister queries the credential store through an external command
// holding one certificate subject per output line. Any failure (missing
// command, non-zero exit, timeout) yields an empty list, not an error.
type CommandLister struct {
	Command []string
	Timeout time.Duration
}

func (l *CommandLister) List(ctx context.Context) ([]string, error) {
	command := l.Command
	if len(command) == 0 {
		command = DefaultQueryCommand()
	}
	if len(command) == 0 {
		return nil, nil
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, command[0], command[1:]...).Output()
	if err != nil {
		log.Printf("DEBUG: store query %q failed: %v", command[0], err)
		return nil, nil
	}
	return DedupAliases(strings.Split(string(out), "\n")), nil
}
