package diagnostics

import (
	"strings"
	"testing"
)

func TestFormatDiagnosticPretty(t *testing.T) {
	d := Type("cannot add %s to %s", "String", "Integer").WithOpcode("+")
	got := FormatDiagnostic(d, true)
	if !strings.Contains(got, "E_TYPE") || !strings.Contains(got, `opcode "+"`) {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatDiagnosticJSON(t *testing.T) {
	d := Name("unbound variable").WithName("x")
	got := FormatDiagnostic(d, false)
	if !strings.Contains(got, `"code":"E_NAME"`) || !strings.Contains(got, `"name":"x"`) {
		t.Fatalf("unexpected json: %s", got)
	}
}

func TestExitCodeDistinctPerKind(t *testing.T) {
	codes := []string{EParse, EName, EType, EDomain, EIO}
	seen := map[int]bool{}
	for _, c := range codes {
		ec := ExitCode(c)
		if ec == 0 {
			t.Fatalf("code %s mapped to exit 0", c)
		}
		if seen[ec] {
			t.Fatalf("exit code %d reused across kinds", ec)
		}
		seen[ec] = true
	}
}

func TestDiagnosticSatisfiesError(t *testing.T) {
	var err error = Domain("division by zero")
	if err.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
}
