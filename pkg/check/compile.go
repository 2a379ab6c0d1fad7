package check

import "fmt"

// Decl is a structured check declaration: a display name, a named
// predicate reference, and the columns the predicate reads.
type Decl struct {
	Name        string
	Description string
	Predicate   string
	Columns     []string
}

// Compile validates a sequence of declarations and assembles them into a
// CheckSet, in declaration order. The first invalid declaration aborts
// compilation with a CompileError identifying it.
func Compile(name string, decls []Decl, reg *Registry) (*CheckSet, error) {
	if name == "" {
		return nil, &CompileError{Reason: "checkset name is required"}
	}
	if reg == nil {
		reg = Default()
	}

	set := &CheckSet{name: name, checks: make([]*Check, 0, len(decls))}
	seen := make(map[string]bool, len(decls))

	for i, d := range decls {
		ident := d.Name
		if ident == "" {
			ident = fmt.Sprintf("#%d", i+1)
		}
		c, err := buildCheck(name, ident, d, reg)
		if err != nil {
			return nil, err
		}
		if seen[c.name] {
			return nil, &CompileError{CheckSet: name, Decl: quoted(ident), Reason: "duplicate check name"}
		}
		seen[c.name] = true
		set.checks = append(set.checks, c)
	}
	return set, nil
}

func buildCheck(setName, ident string, d Decl, reg *Registry) (*Check, error) {
	if d.Name == "" {
		return nil, &CompileError{CheckSet: setName, Decl: ident, Reason: "check name must be a non-empty string"}
	}
	if d.Predicate == "" {
		return nil, &CompileError{CheckSet: setName, Decl: quoted(ident), Reason: "predicate reference is required"}
	}
	def, ok := reg.Lookup(d.Predicate)
	if !ok {
		return nil, &CompileError{
			CheckSet: setName,
			Decl:     quoted(ident),
			Reason:   fmt.Sprintf("unknown predicate %q", d.Predicate),
		}
	}

	columns := dedupeColumns(d.Columns)
	if len(columns) == 0 {
		return nil, &CompileError{CheckSet: setName, Decl: quoted(ident), Reason: "at least one column is required"}
	}
	if def.Arity >= 0 && def.Arity != len(columns) {
		return nil, &CompileError{
			CheckSet: setName,
			Decl:     quoted(ident),
			Reason:   fmt.Sprintf("predicate %q takes %d columns, got %d", d.Predicate, def.Arity, len(columns)),
		}
	}

	return &Check{
		name:        d.Name,
		description: d.Description,
		predName:    d.Predicate,
		predicate:   def.Fn,
		columns:     columns,
	}, nil
}

// dedupeColumns drops repeated identifiers, preserving first occurrence.
func dedupeColumns(cols []string) []string {
	seen := make(map[string]bool, len(cols))
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func quoted(s string) string {
	return fmt.Sprintf("%q", s)
}
