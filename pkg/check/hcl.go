package check

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// CompileHCL compiles an HCL checks file. The file holds exactly one
// checkset block; each check block inside it declares one check:
//
//	checkset "orders" {
//	  check "amount_positive" {
//	    expr        = positive(amount)
//	    description = "order amounts are > 0"
//	  }
//	  check "amount_le_total" {
//	    expr = le(amount, total)
//	  }
//	}
//
// The check label is the display name. expr must be an invocation of a
// predicate registered in reg; its column identifiers are discovered by a
// depth-first walk of the full expression tree, deduplicated preserving
// first-occurrence order.
func CompileHCL(filename string, src []byte, reg *Registry) (*CheckSet, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &CompileError{Reason: fmt.Sprintf("parse %s: %s", filename, diags.Error())}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &CompileError{Reason: fmt.Sprintf("parse %s: unexpected body type", filename)}
	}

	var setBlock *hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type != "checkset" {
			return nil, &CompileError{Reason: fmt.Sprintf("%s: unexpected %q block, want checkset", filename, block.Type)}
		}
		if setBlock != nil {
			return nil, &CompileError{Reason: fmt.Sprintf("%s: multiple checkset blocks", filename)}
		}
		setBlock = block
	}
	if setBlock == nil {
		return nil, &CompileError{Reason: fmt.Sprintf("%s: no checkset block found", filename)}
	}
	if len(setBlock.Labels) != 1 {
		return nil, &CompileError{Reason: fmt.Sprintf("%s: checkset block requires exactly one name label", filename)}
	}

	return compileHCLChecks(setBlock.Labels[0], setBlock.Body, reg)
}

// CompileHCLFile compiles an HCL checks file from disk.
func CompileHCLFile(path string, reg *Registry) (*CheckSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}
	return CompileHCL(path, src, reg)
}

func compileHCLChecks(setName string, body *hclsyntax.Body, reg *Registry) (*CheckSet, error) {
	if reg == nil {
		reg = Default()
	}
	if len(body.Attributes) > 0 {
		return nil, &CompileError{CheckSet: setName, Reason: "checkset block accepts only check blocks"}
	}

	var decls []Decl
	for i, block := range body.Blocks {
		if block.Type != "check" {
			return nil, &CompileError{
				CheckSet: setName,
				Reason:   fmt.Sprintf("unexpected %q block at %s, want check", block.Type, block.DefRange().String()),
			}
		}
		if len(block.Labels) != 1 {
			return nil, &CompileError{
				CheckSet: setName,
				Decl:     fmt.Sprintf("#%d", i+1),
				Reason:   "check block requires exactly one literal name label",
			}
		}
		decl, err := declFromBlock(setName, block)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	return Compile(setName, decls, reg)
}

func declFromBlock(setName string, block *hclsyntax.Block) (Decl, error) {
	name := block.Labels[0]
	decl := Decl{Name: name}

	if len(block.Body.Blocks) > 0 {
		return decl, &CompileError{CheckSet: setName, Decl: quoted(name), Reason: "check block accepts no nested blocks"}
	}

	for attrName, attr := range block.Body.Attributes {
		switch attrName {
		case "expr":
			call, ok := attr.Expr.(*hclsyntax.FunctionCallExpr)
			if !ok {
				return decl, &CompileError{
					CheckSet: setName,
					Decl:     quoted(name),
					Reason:   "expr must be an invocation of a named predicate",
				}
			}
			decl.Predicate = call.Name
			decl.Columns = exprColumns(call)
		case "description":
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() || val.Type() != cty.String {
				return decl, &CompileError{
					CheckSet: setName,
					Decl:     quoted(name),
					Reason:   "description must be a literal string",
				}
			}
			decl.Description = val.AsString()
		default:
			return decl, &CompileError{
				CheckSet: setName,
				Decl:     quoted(name),
				Reason:   fmt.Sprintf("unsupported attribute %q", attrName),
			}
		}
	}

	if decl.Predicate == "" {
		return decl, &CompileError{CheckSet: setName, Decl: quoted(name), Reason: "expr attribute is required"}
	}
	return decl, nil
}

// exprColumns walks an expression tree depth-first and collects every
// column reference, deduplicated by first occurrence.
func exprColumns(expr hclsyntax.Expression) []string {
	var cols []string
	seen := make(map[string]bool)
	walkColumns(expr, seen, &cols)
	return cols
}

func walkColumns(expr hclsyntax.Expression, seen map[string]bool, out *[]string) {
	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		name := e.Traversal.RootName()
		if !seen[name] {
			seen[name] = true
			*out = append(*out, name)
		}
	case *hclsyntax.FunctionCallExpr:
		for _, arg := range e.Args {
			walkColumns(arg, seen, out)
		}
	case *hclsyntax.BinaryOpExpr:
		walkColumns(e.LHS, seen, out)
		walkColumns(e.RHS, seen, out)
	case *hclsyntax.UnaryOpExpr:
		walkColumns(e.Val, seen, out)
	case *hclsyntax.ConditionalExpr:
		walkColumns(e.Condition, seen, out)
		walkColumns(e.TrueResult, seen, out)
		walkColumns(e.FalseResult, seen, out)
	case *hclsyntax.ParenthesesExpr:
		walkColumns(e.Expression, seen, out)
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			walkColumns(part, seen, out)
		}
	case *hclsyntax.TemplateWrapExpr:
		walkColumns(e.Wrapped, seen, out)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			walkColumns(item, seen, out)
		}
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			walkColumns(item.ValueExpr, seen, out)
		}
	case *hclsyntax.IndexExpr:
		walkColumns(e.Collection, seen, out)
		walkColumns(e.Key, seen, out)
	case *hclsyntax.RelativeTraversalExpr:
		walkColumns(e.Source, seen, out)
	case *hclsyntax.SplatExpr:
		walkColumns(e.Source, seen, out)
	}
}
