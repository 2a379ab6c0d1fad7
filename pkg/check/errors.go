package check

import "fmt"

// CompileError reports a structurally invalid declaration. Compilation is
// fail-fast: the first invalid declaration aborts the whole block.
type CompileError struct {
	CheckSet string // checkset being compiled
	Decl     string // offending declaration, by name or position
	Reason   string
}

func (e *CompileError) Error() string {
	if e.Decl == "" {
		return fmt.Sprintf("compile checkset %q: %s", e.CheckSet, e.Reason)
	}
	return fmt.Sprintf("compile checkset %q: declaration %s: %s", e.CheckSet, e.Decl, e.Reason)
}

// NotFoundError reports a lookup of an unknown name. Lookups never
// silently default: unknown names are caller programming errors.
type NotFoundError struct {
	Kind  string // what was looked up, e.g. "check" or "predicate"
	Name  string
	Scope string // where it was looked up, e.g. the checkset name
}

func (e *NotFoundError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %q not found in %q", e.Kind, e.Name, e.Scope)
}
