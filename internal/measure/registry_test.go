package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrylog/pantrylog/internal/measure"
)

func TestRegistry_Resolve_CanonicalNames(t *testing.T) {
	r := measure.NewRegistry()

	cases := []struct {
		identifier string
		family     measure.Family
	}{
		{"gram", measure.Mass},
		{"kilogram", measure.Mass},
		{"milliliter", measure.Volume},
		{"teaspoon", measure.Volume},
		{"tablespoon", measure.Volume},
		{"cup", measure.Volume},
		{"count", measure.Count},
	}
	for _, tc := range cases {
		t.Run(tc.identifier, func(t *testing.T) {
			u, err := r.Resolve(tc.identifier)
			require.NoError(t, err)
			assert.Equal(t, tc.identifier, u.Name())
			assert.Equal(t, tc.family, u.Family())
			assert.False(t, u.IsZero())
		})
	}
}

func TestRegistry_Resolve_Aliases(t *testing.T) {
	r := measure.NewRegistry()

	// Aliases resolve to the identical canonical value, not a lookalike.
	cases := map[string]string{
		"g":             "gram",
		"tsp":           "teaspoon",
		"tbsp":          "tablespoon",
		"ml":            "milliliter",
		"fl oz":         "fluid ounce",
		"dimensionless": "count",
		"piece":         "count",
	}
	for alias, canonical := range cases {
		t.Run(alias, func(t *testing.T) {
			got, err := r.Resolve(alias)
			require.NoError(t, err)
			want, err := r.Resolve(canonical)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.True(t, got.Equal(want))
		})
	}
}

func TestRegistry_Resolve_NormalizesInput(t *testing.T) {
	r := measure.NewRegistry()

	for _, id := range []string{"Gram", "GRAM", "  gram  ", "\tGrams"} {
		u, err := r.Resolve(id)
		require.NoError(t, err, "identifier %q", id)
		assert.Equal(t, "gram", u.Name())
	}
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	r := measure.NewRegistry()

	for _, id := range []string{"bananas", "furlong", "", "   ", "123"} {
		t.Run(id, func(t *testing.T) {
			_, err := r.Resolve(id)
			assert.ErrorIs(t, err, measure.ErrUnknownUnit)
		})
	}
}

func TestRegistry_MustResolve_PanicsOnUnknown(t *testing.T) {
	r := measure.NewRegistry()

	assert.NotPanics(t, func() { r.MustResolve("gram") })
	assert.Panics(t, func() { r.MustResolve("bananas") })
}

func TestRegistry_Units_SortedAndCopied(t *testing.T) {
	r := measure.NewRegistry()

	units := r.Units()
	require.NotEmpty(t, units)

	for i := 1; i < len(units); i++ {
		prev, cur := units[i-1], units[i]
		assert.LessOrEqual(t, int(prev.Family()), int(cur.Family()),
			"units must be grouped by family")
	}

	// Mutating the returned slice must not affect the registry.
	units[0] = measure.Unit{}
	fresh := r.Units()
	assert.False(t, fresh[0].IsZero())
}

func TestUnit_Dimensionless(t *testing.T) {
	r := measure.NewRegistry()

	assert.True(t, r.MustResolve("count").Dimensionless())
	assert.True(t, r.MustResolve("dimensionless").Dimensionless())
	assert.False(t, r.MustResolve("dozen").Dimensionless(), "dozen is scaled, renders with its name")
	assert.False(t, r.MustResolve("gram").Dimensionless())
}

func TestUnit_Equal(t *testing.T) {
	r := measure.NewRegistry()

	assert.True(t, r.MustResolve("tsp").Equal(r.MustResolve("teaspoon")))
	assert.False(t, r.MustResolve("teaspoon").Equal(r.MustResolve("tablespoon")))
	assert.False(t, r.MustResolve("gram").Equal(r.MustResolve("milliliter")),
		"same factor across families is not equality")
	assert.False(t, r.MustResolve("gram").Equal(measure.Unit{}))
}
