// Package check compiles named check declarations into executable check
// sets for tabular data validation.
//
// A check binds a display name and a named predicate to an ordered list of
// column identifiers. Declarations can come from three frontends:
//
//   - HCL files (CompileHCL): check blocks whose expr attribute is a
//     predicate invocation; columns are discovered from the expression tree.
//   - Structured records (Compile): explicit Decl values, validated and
//     assembled by the same builder.
//   - YAML files (LoadYAML): structured declarations decoded into Decl
//     records and compiled.
//
// Compiled CheckSet values are immutable and safe for reuse across many
// engine runs.
package check
