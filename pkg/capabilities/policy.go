// Package capabilities implements the host capability policy gating the two
// Knight opcodes that reach outside the process: SHELL (spawns a child) and
// QUIT (terminates it). Grounded on the teacher's pkg/capabilities/policy.go
// precedence chain (project file, then user file, then a default), with the
// default flipped: spec.md imposes no sandboxing requirement on Knight, so
// the fallback here is allow-all rather than the teacher's deny-all.
package capabilities

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Capability names gated by a Policy.
const (
	Shell = "shell"
	Quit  = "quit"
)

// Policy decides whether a named capability may run.
type Policy struct {
	allowAll bool
	allowed  map[string]bool
	denied   map[string]bool
}

// File is the on-disk JSON shape of a policy file: an explicit allow list,
// an explicit deny list (which always wins over allow), and a per-capability
// limits block reserved for future use (parsed but not yet interpreted,
// mirroring the teacher's PolicyFile.Limits).
type File struct {
	Allow  []string       `json:"allow,omitempty"`
	Deny   []string       `json:"deny,omitempty"`
	Limits map[string]any `json:"limits,omitempty"`
}

// IsAllowed reports whether cap may run under this policy. A nil Policy
// (no file loaded, no default constructed) denies everything, the safe
// failure mode for a caller that forgot to load one.
func (p *Policy) IsAllowed(cap string) bool {
	if p == nil {
		return false
	}
	if p.denied[cap] {
		return false
	}
	if p.allowAll {
		return true
	}
	return p.allowed[cap]
}

// AllowAll returns a policy permitting every capability. This is the
// effective default when no policy file is found anywhere in the
// precedence chain.
func AllowAll() *Policy {
	return &Policy{allowAll: true}
}

// DenyAll returns a policy denying every capability, for explicit opt-in
// sandboxing (an empty allow list with no allowAll flag).
func DenyAll() *Policy {
	return &Policy{allowed: make(map[string]bool)}
}

// Load resolves the effective policy: projectDir/.knightpolicy.json, then
// ~/.knight/policy.json, then AllowAll(). It returns the parsed File too
// (nil if no file was found) so callers like `knight policy` can report
// which source, if any, produced the effective policy.
func Load(projectDir string) (*Policy, *File, string) {
	projectPath := filepath.Join(projectDir, ".knightpolicy.json")
	if f, err := loadFile(projectPath); err == nil {
		return build(f), f, projectPath
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".knight", "policy.json")
		if f, err := loadFile(userPath); err == nil {
			return build(f), f, userPath
		}
	}

	return AllowAll(), nil, "<default: allow all>"
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func build(f *File) *Policy {
	allowed := make(map[string]bool, len(f.Allow))
	for _, c := range f.Allow {
		allowed[c] = true
	}
	denied := make(map[string]bool, len(f.Deny))
	for _, c := range f.Deny {
		denied[c] = true
	}
	// A file with no allow list permits every capability it does not deny;
	// an explicit (even empty) allow list permits only what it names.
	return &Policy{allowAll: f.Allow == nil, allowed: allowed, denied: denied}
}
