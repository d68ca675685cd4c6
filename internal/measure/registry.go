package measure

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownUnit is returned by Registry.Resolve for identifiers that do not
// name any registered unit. Handlers should map this to HTTP 422.
var ErrUnknownUnit = errors.New("unknown unit")

// Registry maps unit identifiers (canonical names and aliases) to canonical
// Unit values. Resolution is an explicit step: entity constructors require an
// already-resolved Unit and never accept a raw string in its place.
//
// The registry is immutable after construction, so a single instance may be
// shared freely across goroutines.
type Registry struct {
	byName map[string]Unit
	units  []Unit // canonical units only, sorted by family then factor
}

// unitDef declares one canonical unit and its accepted aliases.
type unitDef struct {
	name    string
	family  Family
	factor  float64
	aliases []string
}

// The factor tables below follow US customary kitchen measures
// (1 tsp = 4.92892159375 ml, 1 cup = 16 tbsp).
var defs = []unitDef{
	// Mass — base unit gram.
	{"milligram", Mass, 0.001, []string{"mg", "milligrams"}},
	{"gram", Mass, 1, []string{"g", "grams"}},
	{"kilogram", Mass, 1000, []string{"kg", "kilograms"}},
	{"ounce", Mass, 28.349523125, []string{"oz", "ounces"}},
	{"pound", Mass, 453.59237, []string{"lb", "lbs", "pounds"}},

	// Volume — base unit milliliter.
	{"milliliter", Volume, 1, []string{"ml", "milliliters", "millilitre", "millilitres"}},
	{"liter", Volume, 1000, []string{"l", "liters", "litre", "litres"}},
	{"teaspoon", Volume, 4.92892159375, []string{"tsp", "teaspoons"}},
	{"tablespoon", Volume, 14.78676478125, []string{"tbsp", "tablespoons"}},
	{"fluid ounce", Volume, 29.5735295625, []string{"floz", "fl oz", "fluid ounces"}},
	{"cup", Volume, 236.5882365, []string{"cups"}},

	// Count — base unit a single item.
	{"count", Count, 1, []string{"dimensionless", "piece", "pieces", "each", "item", "items"}},
	{"dozen", Count, 12, []string{"dozens"}},
}

// NewRegistry builds a registry seeded with the culinary units above.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Unit)}
	for _, d := range defs {
		u := Unit{name: d.name, family: d.family, factor: d.factor}
		r.byName[d.name] = u
		for _, a := range d.aliases {
			r.byName[a] = u
		}
		r.units = append(r.units, u)
	}
	sort.Slice(r.units, func(i, j int) bool {
		if r.units[i].family != r.units[j].family {
			return r.units[i].family < r.units[j].family
		}
		return r.units[i].factor < r.units[j].factor
	})
	return r
}

// Resolve maps a unit identifier to its canonical Unit. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown or empty
// identifiers fail with ErrUnknownUnit.
func (r *Registry) Resolve(identifier string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(identifier))
	if key == "" {
		return Unit{}, fmt.Errorf("measure: resolve: empty identifier: %w", ErrUnknownUnit)
	}
	u, ok := r.byName[key]
	if !ok {
		return Unit{}, fmt.Errorf("measure: resolve %q: %w", identifier, ErrUnknownUnit)
	}
	return u, nil
}

// MustResolve is Resolve for identifiers known to be valid at compile time,
// panicking otherwise. Intended for test fixtures and seed data.
func (r *Registry) MustResolve(identifier string) Unit {
	u, err := r.Resolve(identifier)
	if err != nil {
		panic(err)
	}
	return u
}

// Units returns all canonical units, ordered by family then scale.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)
	return out
}
