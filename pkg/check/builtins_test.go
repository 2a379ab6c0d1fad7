package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalBuiltin(t *testing.T, name string, values ...any) (bool, error) {
	t.Helper()
	def, ok := Default().Lookup(name)
	require.True(t, ok, "builtin %s not registered", name)
	return def.Fn(values)
}

func TestBuiltinNotNull(t *testing.T) {
	ok, err := evalBuiltin(t, "not_null", "x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = evalBuiltin(t, "not_null", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuiltinNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    bool
		wantErr bool
	}{
		{"plain string", "hello", true, false},
		{"empty string", "", false, false},
		{"blank string", "   ", false, false},
		{"non-string", 42.0, false, true},
		{"nil", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := evalBuiltin(t, "non_empty", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBuiltinSignPredicates(t *testing.T) {
	tests := []struct {
		name    string
		pred    string
		value   any
		want    bool
		wantErr bool
	}{
		{"positive int", "positive", 3, true, false},
		{"positive zero", "positive", 0.0, false, false},
		{"positive negative", "positive", -1.5, false, false},
		{"positive null", "positive", nil, false, true},
		{"positive string", "positive", "abc", false, true},
		{"non_negative zero", "non_negative", 0.0, true, false},
		{"non_negative int64", "non_negative", int64(7), true, false},
		{"non_negative negative", "non_negative", -0.1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := evalBuiltin(t, tt.pred, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBuiltinComparisons(t *testing.T) {
	tests := []struct {
		name string
		pred string
		a, b any
		want bool
	}{
		{"gt true", "gt", 3.0, 2.0, true},
		{"gt equal", "gt", 2.0, 2.0, false},
		{"ge equal", "ge", 2.0, 2.0, true},
		{"lt mixed types", "lt", int64(1), 2.0, true},
		{"le true", "le", 1.0, 1.0, true},
		{"le false", "le", 2.0, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := evalBuiltin(t, tt.pred, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBuiltinComparisonErrors(t *testing.T) {
	_, err := evalBuiltin(t, "gt", "abc", 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")

	_, err = evalBuiltin(t, "lt", 1.0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null")
}

func TestBuiltinEquality(t *testing.T) {
	tests := []struct {
		name string
		pred string
		a, b any
		want bool
	}{
		{"eq numeric cross-type", "eq", int64(3), 3.0, true},
		{"eq strings", "eq", "a", "a", true},
		{"eq mismatch", "eq", "a", "b", false},
		{"eq nils", "eq", nil, nil, true},
		{"ne numeric", "ne", 1.0, 2.0, true},
		{"ne equal", "ne", "x", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := evalBuiltin(t, tt.pred, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBuiltinBetween(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi any
		want      bool
		wantErr   bool
	}{
		{"inside", 5.0, 1.0, 10.0, true, false},
		{"at lower bound", 1.0, 1.0, 10.0, true, false},
		{"at upper bound", 10.0, 1.0, 10.0, true, false},
		{"below", 0.5, 1.0, 10.0, false, false},
		{"above", 11.0, 1.0, 10.0, false, false},
		{"null value", nil, 1.0, 10.0, false, true},
		{"non-numeric bound", 5.0, "low", 10.0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := evalBuiltin(t, "between", tt.v, tt.lo, tt.hi)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAsNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{"float64", 1.5, 1.5, false},
		{"float32", float32(2), 2, false},
		{"int", 3, 3, false},
		{"int32", int32(4), 4, false},
		{"int64", int64(5), 5, false},
		{"uint64", uint64(6), 6, false},
		{"nil", nil, 0, true},
		{"string", "7", 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asNumber(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
