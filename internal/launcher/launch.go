package launcher

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// interruptGrace is how long the child gets to shut down after an
// interrupt before it is killed.
const interruptGrace = 5 * time.Second

// Invocation is a fully resolved argv for the dashboard process.
type Invocation struct {
	Path string
	Args []string
}

// Invocation builds the argv for running app through the resolved
// candidate. Exactly two server flags are passed, the port and the bind
// address; nothing else is synthesized.
func (r Resolution) Invocation(app string, port int, bind string) Invocation {
	args := append([]string{}, r.Candidate.Args...)
	args = append(args,
		app,
		"--server.port", strconv.Itoa(port),
		"--server.address", bind,
	)
	return Invocation{Path: r.Path, Args: args}
}

// Run executes the invocation in the foreground with stdio passed
// through, blocking until the child exits. Context cancellation (the
// operator's interrupt) is forwarded to the child as an interrupt so
// Streamlit can shut down cleanly.
func Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	log.Debug().Str("path", inv.Path).Strs("args", inv.Args).Msg("starting dashboard process")
	return cmd.Run()
}

// ExitCode maps a Run error onto the wrapper's own exit status. The
// child's failure is opaque: its exit code becomes ours.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
