package check

// Check is a single named validation rule bound to an ordered list of
// columns. Immutable after compilation.
type Check struct {
	name        string
	description string
	predName    string
	predicate   Predicate
	columns     []string
}

// Name returns the display name of the check.
func (c *Check) Name() string { return c.name }

// Description returns the optional free-text description.
func (c *Check) Description() string { return c.description }

// PredicateName returns the name the predicate was registered under.
func (c *Check) PredicateName() string { return c.predName }

// Predicate returns the executable predicate. It receives the values of
// the declared columns for one row, in declared order.
func (c *Check) Predicate() Predicate { return c.predicate }

// Columns returns the declared column identifiers, deduplicated by first
// occurrence in the declaration.
func (c *Check) Columns() []string {
	cols := make([]string, len(c.columns))
	copy(cols, c.columns)
	return cols
}

// CheckSet is a named, ordered, immutable collection of checks.
type CheckSet struct {
	name   string
	checks []*Check
}

// Name returns the checkset name.
func (s *CheckSet) Name() string { return s.name }

// Len returns the number of checks in the set.
func (s *CheckSet) Len() int { return len(s.checks) }

// Checks returns the checks in declaration order.
func (s *CheckSet) Checks() []*Check {
	checks := make([]*Check, len(s.checks))
	copy(checks, s.checks)
	return checks
}

// Names returns the check names in declaration order.
func (s *CheckSet) Names() []string {
	names := make([]string, len(s.checks))
	for i, c := range s.checks {
		names[i] = c.name
	}
	return names
}

// Columns returns the declared columns of the named check.
// It returns a NotFoundError if the set has no check with that name.
func (s *CheckSet) Columns(name string) ([]string, error) {
	for _, c := range s.checks {
		if c.name == name {
			return c.Columns(), nil
		}
	}
	return nil, &NotFoundError{Kind: "check", Name: name, Scope: s.name}
}
