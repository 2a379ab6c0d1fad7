package check

import (
	"fmt"
	"strings"
)

// Built-in predicates. All numeric comparisons coerce their inputs with
// asNumber; a value that cannot be coerced yields an error, which the
// engine records as a row failure.

func init() {
	for _, def := range []PredicateDef{
		{Name: "not_null", Description: "value is not null", Arity: 1, Fn: notNull},
		{Name: "non_empty", Description: "string value is not empty or blank", Arity: 1, Fn: nonEmpty},
		{Name: "positive", Description: "numeric value is greater than zero", Arity: 1, Fn: positive},
		{Name: "non_negative", Description: "numeric value is zero or greater", Arity: 1, Fn: nonNegative},
		{Name: "gt", Description: "first column is greater than second", Arity: 2, Fn: numericCmp(func(a, b float64) bool { return a > b })},
		{Name: "ge", Description: "first column is greater than or equal to second", Arity: 2, Fn: numericCmp(func(a, b float64) bool { return a >= b })},
		{Name: "lt", Description: "first column is less than second", Arity: 2, Fn: numericCmp(func(a, b float64) bool { return a < b })},
		{Name: "le", Description: "first column is less than or equal to second", Arity: 2, Fn: numericCmp(func(a, b float64) bool { return a <= b })},
		{Name: "eq", Description: "columns are equal", Arity: 2, Fn: equal},
		{Name: "ne", Description: "columns are not equal", Arity: 2, Fn: notEqual},
		{Name: "between", Description: "first column lies in [second, third]", Arity: 3, Fn: between},
	} {
		defaultRegistry.MustRegister(def)
	}
}

func notNull(values []any) (bool, error) {
	return values[0] != nil, nil
}

func nonEmpty(values []any) (bool, error) {
	s, ok := values[0].(string)
	if !ok {
		return false, fmt.Errorf("non_empty: expected string, got %T", values[0])
	}
	return strings.TrimSpace(s) != "", nil
}

func positive(values []any) (bool, error) {
	n, err := asNumber(values[0])
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nonNegative(values []any) (bool, error) {
	n, err := asNumber(values[0])
	if err != nil {
		return false, err
	}
	return n >= 0, nil
}

func numericCmp(cmp func(a, b float64) bool) Predicate {
	return func(values []any) (bool, error) {
		a, err := asNumber(values[0])
		if err != nil {
			return false, err
		}
		b, err := asNumber(values[1])
		if err != nil {
			return false, err
		}
		return cmp(a, b), nil
	}
}

func between(values []any) (bool, error) {
	v, err := asNumber(values[0])
	if err != nil {
		return false, err
	}
	lo, err := asNumber(values[1])
	if err != nil {
		return false, err
	}
	hi, err := asNumber(values[2])
	if err != nil {
		return false, err
	}
	return v >= lo && v <= hi, nil
}

func equal(values []any) (bool, error) {
	return valuesEqual(values[0], values[1]), nil
}

func notEqual(values []any) (bool, error) {
	return !valuesEqual(values[0], values[1]), nil
}

// valuesEqual compares two cell values, normalizing numeric types first so
// int64(3) from a database source equals float64(3) from a CSV source.
func valuesEqual(a, b any) bool {
	an, aerr := asNumber(a)
	bn, berr := asNumber(b)
	if aerr == nil && berr == nil {
		return an == bn
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// asNumber coerces the numeric types that sources produce into float64.
func asNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}
