// Command knight is the Knight interpreter's CLI entry point: run, check,
// fmt, repl, help, and policy subcommands, grounded on the teacher's
// cmd/a0 dispatch style.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/knight-lang/knight-go/pkg/capabilities"
	"github.com/knight-lang/knight-go/pkg/diagnostics"
	"github.com/knight-lang/knight-go/pkg/formatter"
	"github.com/knight-lang/knight-go/pkg/help"
	"github.com/knight-lang/knight-go/pkg/runtime"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: knight <command> [options]")
		fmt.Fprintln(os.Stderr, "commands: run, check, fmt, repl, help, policy")
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "help", "--help", "-h":
		os.Exit(cmdHelp(os.Args[2:]))
	case "policy":
		os.Exit(cmdPolicy(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

// cmdRun accepts a file path, `-e <program>` for an inline program, or `-`
// to read the program from stdin.
func cmdRun(args []string) int {
	var file, inline string
	jsonOutput := false
	unsafeAllowAll := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e":
			if i+1 < len(args) {
				i++
				inline = args[i]
			}
		case "--json":
			jsonOutput = true
		case "--unsafe-allow-all":
			unsafeAllowAll = true
		default:
			if !strings.HasPrefix(args[i], "-") || args[i] == "-" {
				file = args[i]
			}
		}
	}
	pretty := !jsonOutput

	source, exitCode := acquireSource(file, inline, pretty)
	if exitCode != 0 {
		return exitCode
	}

	var opts []runtime.Option
	if unsafeAllowAll {
		opts = append(opts, runtime.WithPolicy(capabilities.AllowAll()))
	} else {
		cwd, _ := os.Getwd()
		policy, _, _ := capabilities.Load(cwd)
		opts = append(opts, runtime.WithPolicy(policy))
	}
	rt := runtime.New(opts...)

	if _, err := rt.Run(source); err != nil {
		reportError(err, pretty)
		return exitCodeFor(err)
	}
	return 0
}

func cmdCheck(args []string) int {
	var file, inline string
	jsonOutput := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e":
			if i+1 < len(args) {
				i++
				inline = args[i]
			}
		case "--json":
			jsonOutput = true
		default:
			if !strings.HasPrefix(args[i], "-") || args[i] == "-" {
				file = args[i]
			}
		}
	}
	pretty := !jsonOutput

	source, exitCode := acquireSource(file, inline, pretty)
	if exitCode != 0 {
		return exitCode
	}

	rt := runtime.New()
	if err := rt.Check(source); err != nil {
		reportError(err, pretty)
		return exitCodeFor(err)
	}
	if pretty {
		fmt.Println("no errors found")
	} else {
		fmt.Println("[]")
	}
	return 0
}

func cmdFmt(args []string) int {
	var file string
	write := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--write":
			write = true
		default:
			if !strings.HasPrefix(args[i], "-") {
				file = args[i]
			}
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: knight fmt <file> [--write]")
		return 1
	}

	sourceBytes, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read file: %s\n", file)
		return 1
	}

	rt := runtime.New()
	formatted, fmtErr := rt.Format(string(sourceBytes))
	if fmtErr != nil {
		reportError(fmtErr, true)
		return exitCodeFor(fmtErr)
	}

	if write {
		if err := os.WriteFile(file, []byte(formatted+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing file: %s\n", err)
			return 1
		}
		return 0
	}
	fmt.Println(formatted)
	return 0
}

const (
	replPromptMain = "]=> "
	replPromptCont = "...> "
	replHistFile   = ".knight_history"
	replBanner     = "Knight REPL. :quit to exit, :reset to clear bindings."
)

func cmdRepl(args []string) int {
	fmt.Println(replBanner)

	rt := runtime.New()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}

	for {
		line, err := ln.Prompt(replPromptMain)
		if err != nil {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if replCommand(&rt, trimmed) {
				break
			}
			ln.AppendHistory(line)
			continue
		}

		lineCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		rt.SetContext(lineCtx)
		v, err := rt.Run(line)
		cancel()
		if err != nil {
			reportError(err, true)
		} else {
			fmt.Println(formatter.Format(v))
		}
		ln.AppendHistory(line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		f.Close()
	}
	return 0
}

// replCommand handles a `:`-prefixed REPL directive, replacing *rtSlot in
// place for :reset. It reports whether the REPL should exit.
func replCommand(rtSlot **runtime.Runtime, cmd string) bool {
	switch cmd {
	case ":quit", ":exit":
		return true
	case ":reset":
		*rtSlot = runtime.New()
		fmt.Println("environment reset")
		return false
	case ":help":
		fmt.Print(help.QuickRef())
		return false
	default:
		fmt.Fprintf(os.Stderr, "unknown REPL command: %s\n", cmd)
		return false
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return replHistFile
	}
	return filepath.Join(home, replHistFile)
}

func cmdHelp(args []string) int {
	if len(args) == 0 {
		fmt.Print(help.QuickRef())
		return 0
	}
	e, err := help.Lookup(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("%s (%c), arity %d: %s\n", e.Name, e.Opcode, e.Arity, e.Doc)
	return 0
}

func cmdPolicy(args []string) int {
	cwd, _ := os.Getwd()
	_, pf, source := capabilities.Load(cwd)

	if pf == nil {
		fmt.Println("{}")
		fmt.Fprintf(os.Stderr, "no policy file found, effective policy is %s\n", source)
		return 0
	}
	b, _ := json.MarshalIndent(pf, "", "  ")
	fmt.Println(string(b))
	fmt.Fprintf(os.Stderr, "loaded from %s\n", source)
	return 0
}

// acquireSource resolves a program's source text from a file path, an
// inline -e string, "-" for stdin, or reports a usage error.
func acquireSource(file, inline string, pretty bool) (string, int) {
	if inline != "" {
		return inline, 0
	}
	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: knight run [<file> | - | -e <program>] [--json] [--unsafe-allow-all]")
		return "", 1
	}
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading stdin: %s\n", err)
			return "", 1
		}
		return string(data), 0
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read file: %s\n", file)
		return "", 1
	}
	return string(data), 0
}

func reportError(err error, pretty bool) {
	if d, ok := err.(*diagnostics.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostic(d, pretty))
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}

func exitCodeFor(err error) int {
	if d, ok := err.(*diagnostics.Diagnostic); ok {
		return diagnostics.ExitCode(d.Code)
	}
	return 1
}
