// Package diagnostics defines the Knight interpreter's fatal-error types.
package diagnostics

import (
	"encoding/json"
	"fmt"
)

// Diagnostic codes, one per error kind in spec §7. Every Knight error is
// fatal; there is no recovery primitive, so a Diagnostic always carries
// enough context to print a single terminal diagnostic line.
const (
	EParse  = "E_PARSE"
	EName   = "E_NAME"
	EType   = "E_TYPE"
	EDomain = "E_DOMAIN"
	EIO     = "E_IO"
)

// Diagnostic is a single fatal error, implicating an opcode or variable
// name where relevant.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Opcode  string `json:"opcode,omitempty"`
	Name    string `json:"name,omitempty"`
}

func (d *Diagnostic) Error() string {
	return FormatDiagnostic(d, true)
}

// New builds a Diagnostic with the given code and message.
func New(code, message string) *Diagnostic {
	return &Diagnostic{Code: code, Message: message}
}

// WithOpcode attaches the opcode implicated by the failure.
func (d *Diagnostic) WithOpcode(opcode string) *Diagnostic {
	d.Opcode = opcode
	return d
}

// WithName attaches the variable name implicated by the failure.
func (d *Diagnostic) WithName(name string) *Diagnostic {
	d.Name = name
	return d
}

// Parse, Name, Type, Domain, and IO are constructors for each error kind.
func Parse(format string, a ...any) *Diagnostic {
	return New(EParse, fmt.Sprintf(format, a...))
}

func Name(format string, a ...any) *Diagnostic {
	return New(EName, fmt.Sprintf(format, a...))
}

func Type(format string, a ...any) *Diagnostic {
	return New(EType, fmt.Sprintf(format, a...))
}

func Domain(format string, a ...any) *Diagnostic {
	return New(EDomain, fmt.Sprintf(format, a...))
}

func IO(format string, a ...any) *Diagnostic {
	return New(EIO, fmt.Sprintf(format, a...))
}

// FormatDiagnostic renders a diagnostic for display, either as a short
// human-readable line or as JSON.
func FormatDiagnostic(d *Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	out := fmt.Sprintf("error[%s]: %s", d.Code, d.Message)
	if d.Opcode != "" {
		out += fmt.Sprintf(" (opcode %q)", d.Opcode)
	}
	if d.Name != "" {
		out += fmt.Sprintf(" (name %q)", d.Name)
	}
	return out
}

// ExitCode maps a diagnostic code to a process exit code. The spec only
// requires "nonzero"; this refines it for operator convenience without
// contradicting it.
func ExitCode(code string) int {
	switch code {
	case EParse:
		return 2
	case EName:
		return 3
	case EType:
		return 4
	case EDomain:
		return 5
	case EIO:
		return 6
	default:
		return 1
	}
}
