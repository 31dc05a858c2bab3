// Package tools implements host-process capabilities invoked by Knight
// opcodes, grounded on the teacher's pkg/tools/sh_tools.go. SHELL is the
// only one Knight needs: the spec's `` ` `` opcode runs a command through
// the host's default command processor and returns captured stdout.
package tools

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/knight-lang/knight-go/pkg/diagnostics"
)

// Shell runs cmdline through the host shell ("sh -c" on Unix, "cmd /c" on
// Windows, matching the teacher's runtime.GOOS switch) and returns its
// captured stdout. Non-zero exit is not itself an error — the spec only
// says SHELL "returns stdout as a String" — but a failure to even start
// the child process is reported as an IOError. spec.md §5 rules out any
// cancellation or timeout; ctx is honored as-is (context.Background() by
// default) rather than wrapped in a deadline here, so a command only
// stops early if the caller's own ctx is cancelled, as `knight repl` does
// on SIGINT.
func Shell(ctx context.Context, cmdline string) (string, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/c", cmdline)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", cmdline)
	}

	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return string(out), nil
		}
		return "", diagnostics.IO("shell command failed to run: %v", err)
	}
	return string(out), nil
}
