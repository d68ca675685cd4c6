package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnitMismatch is returned when a conversion or comparison crosses unit
// families (e.g. grams to milliliters). Handlers should map this to HTTP 422.
var ErrUnitMismatch = errors.New("unit mismatch")

// Quantity is a dimensioned value: a magnitude paired with a Unit.
// Construction performs no validation beyond what the types enforce —
// callers that need "positive and finite" semantics get them from the domain
// layer, not here.
type Quantity struct {
	Magnitude float64
	Unit      Unit
}

// New combines a magnitude and a unit into a Quantity.
func New(magnitude float64, unit Unit) Quantity {
	return Quantity{Magnitude: magnitude, Unit: unit}
}

// base returns the magnitude expressed in the family base unit.
func (q Quantity) base() float64 { return q.Magnitude * q.Unit.factor }

// ConvertTo re-expresses the quantity in target, which must belong to the
// same family. Cross-family targets and unresolved units fail with
// ErrUnitMismatch.
func (q Quantity) ConvertTo(target Unit) (Quantity, error) {
	if q.Unit.IsZero() || target.IsZero() || q.Unit.family != target.family {
		return Quantity{}, fmt.Errorf("measure: convert %s to %s: %w",
			familyLabel(q.Unit), familyLabel(target), ErrUnitMismatch)
	}
	return Quantity{Magnitude: q.base() / target.factor, Unit: target}, nil
}

// Equal reports whether two quantities denote the same amount: same family
// and equal magnitudes once both are expressed in the base unit. A small
// relative tolerance absorbs float rounding from prior conversions.
func (q Quantity) Equal(other Quantity) bool {
	if q.Unit.family != other.Unit.family {
		return false
	}
	a, b := q.base(), other.base()
	tol := 1e-9 * math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol
}

// String renders the quantity for display: "0.5 teaspoon", "250 gram",
// or just "3.0" when the unit is dimensionless.
func (q Quantity) String() string {
	if q.Unit.Dimensionless() {
		return FormatAmount(q.Magnitude)
	}
	return FormatAmount(q.Magnitude) + " " + q.Unit.name
}

// FormatAmount renders a magnitude with at least one decimal digit, so whole
// amounts read as measurements rather than counts of text: 3 → "3.0",
// 0.5 → "0.5". Non-finite values fall through to strconv's spelling.
func FormatAmount(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".naif") { // no '.', and not NaN/±Inf
		s += ".0"
	}
	return s
}

// familyLabel names a unit's family for error messages, tolerating the
// unresolved zero unit.
func familyLabel(u Unit) string {
	if u.IsZero() {
		return "unresolved unit"
	}
	return u.name + " (" + u.family.String() + ")"
}
