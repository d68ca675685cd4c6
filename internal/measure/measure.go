// Package measure provides the unit and quantity substrate for the Pantry
// application: a small registry of culinary measurement units and a
// dimensioned Quantity type that pairs a magnitude with a unit.
//
// The package deliberately covers only the three families a kitchen needs
// (mass, volume, count) and is not a general unit-algebra engine. Conversion
// is defined within a family only; attempts to cross families fail with
// ErrUnitMismatch.
package measure

// Family identifies the measurement dimension a unit belongs to.
// Conversion is only defined between units of the same family.
type Family int

const (
	// Mass covers weight units; the base unit is the gram.
	Mass Family = iota + 1
	// Volume covers liquid and spoon/cup units; the base unit is the milliliter.
	Volume
	// Count covers dimensionless, countable items (eggs, cloves);
	// the base unit is a single item.
	Count
)

// String returns the lowercase family name, or "unknown" for the zero value.
func (f Family) String() string {
	switch f {
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}

// Unit is a canonical, immutable measurement unit. Units are obtained from a
// Registry via Resolve — the zero value is "unresolved" and is rejected by
// every consumer that requires a real unit.
//
// Two units are interchangeable when Equal reports true: same family and same
// scale factor. Aliases ("tsp", "teaspoon") resolve to the identical canonical
// value, so == also works and Units are safe as map keys.
type Unit struct {
	name   string
	family Family
	factor float64 // multiplier to the family base unit (gram, milliliter, item)
}

// Name returns the canonical unit name, e.g. "teaspoon". Empty for the zero value.
func (u Unit) Name() string { return u.name }

// Family returns the measurement dimension of the unit.
func (u Unit) Family() Family { return u.family }

// IsZero reports whether the unit is the unresolved zero value.
func (u Unit) IsZero() bool { return u == Unit{} }

// Dimensionless reports whether the unit is the plain count unit, which is
// omitted entirely when rendering ("3.0 Eggs", not "3.0 count of Eggs").
// Scaled count units such as "dozen" are not dimensionless.
func (u Unit) Dimensionless() bool { return u.family == Count && u.factor == 1 }

// Equal reports whether two units denote the same dimension and scale.
func (u Unit) Equal(v Unit) bool { return u.family == v.family && u.factor == v.factor }

// String returns the canonical unit name.
func (u Unit) String() string { return u.name }
