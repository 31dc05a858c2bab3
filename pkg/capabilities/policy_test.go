package capabilities

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllowAllPermitsEverything(t *testing.T) {
	p := AllowAll()
	if !p.IsAllowed(Shell) || !p.IsAllowed(Quit) {
		t.Fatalf("AllowAll should permit every capability")
	}
}

func TestDenyAllDeniesEverything(t *testing.T) {
	p := DenyAll()
	if p.IsAllowed(Shell) || p.IsAllowed(Quit) {
		t.Fatalf("DenyAll should deny every capability")
	}
}

func TestNilPolicyDeniesEverything(t *testing.T) {
	var p *Policy
	if p.IsAllowed(Shell) {
		t.Fatalf("nil policy should deny by default")
	}
}

func TestDenyOverridesAllow(t *testing.T) {
	f := &File{Allow: []string{Shell, Quit}, Deny: []string{Quit}}
	p := build(f)
	if !p.IsAllowed(Shell) {
		t.Fatalf("shell should remain allowed")
	}
	if p.IsAllowed(Quit) {
		t.Fatalf("deny should override allow for quit")
	}
}

func TestLoadFallsBackToAllowAll(t *testing.T) {
	dir := t.TempDir()
	p, f, source := Load(dir)
	if f != nil {
		t.Fatalf("expected no policy file to be found")
	}
	if source == "" {
		t.Fatalf("expected a non-empty source description")
	}
	if !p.IsAllowed(Shell) {
		t.Fatalf("expected the fallback policy to allow all")
	}
}

func TestLoadReadsProjectPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".knightpolicy.json")
	if err := os.WriteFile(path, []byte(`{"deny":["quit"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, f, source := Load(dir)
	if f == nil {
		t.Fatalf("expected to find the project policy file")
	}
	if source != path {
		t.Fatalf("expected source %q, got %q", path, source)
	}
	if p.IsAllowed(Quit) {
		t.Fatalf("expected quit to be denied by the project policy")
	}
	if !p.IsAllowed(Shell) {
		t.Fatalf("expected shell to remain allowed (deny list is quit-only)")
	}
}
