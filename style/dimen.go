package style

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// ErrNotADimension is returned for properties which cannot be read as a length.
var ErrNotADimension = errors.New("property is not a dimension")

const (
	dimenNone     uint8 = 0
	dimenAbsolute uint8 = 0x01
	dimenEM       uint8 = 0x02
	dimenAuto     uint8 = 0x03
	dimenPercent  uint8 = 0x04
)

// DimenT is an option type for lengths, e.g. font sizes and spacing.
/*
type DimenT
	= Auto
	| JustDimen dimen
	| Em factor
	| Percentage percent
*/
type DimenT struct {
	d       dimen.DU
	em      float64 // factor for Em and Percentage
	percent percent.Percent
	flags   uint8
}

// Auto creates an unset dimension.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Em creates a dimension relative to the inherited font size.
func Em(f float64) DimenT {
	return DimenT{em: f, flags: dimenEM}
}

// Percentage creates a dimension relative to the inherited value, given in
// whole percent.
func Percentage(n int) DimenT {
	return DimenT{em: float64(n) / 100, percent: percent.FromInt(n), flags: dimenPercent}
}

// ParseDimen reads a property as a dimension. Recognized units are
// pt, px (¾pt), em and % (see Percentage). A bare "0" is a fixed zero length; "auto" is Auto().
func ParseDimen(p Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch s {
	case "":
		return DimenT{}, ErrNotADimension
	case "auto", "normal":
		return Auto(), nil
	case "0":
		return JustDimen(0), nil
	}
	unit := ""
	for _, u := range []string{"pt", "px", "em", "%"} {
		if strings.HasSuffix(s, u) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || unit == "" {
		tracer().Debugf("styling: %q is not a dimension", p)
		return DimenT{}, ErrNotADimension
	}
	switch unit {
	case "pt":
		return JustDimen(dimen.DU(x * float64(dimen.PT))), nil
	case "px":
		return JustDimen(dimen.DU(x * 0.75 * float64(dimen.PT))), nil
	case "%":
		d := Percentage(int(x))
		d.em = x / 100
		return d, nil
	}
	return Em(x), nil
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags == dimenAbsolute
}

// Resolve computes a fixed length for d, using base for relative dimensions.
// Auto and unset dimensions resolve to base.
func (d DimenT) Resolve(base dimen.DU) dimen.DU {
	switch d.flags {
	case dimenAbsolute:
		return d.d
	case dimenEM, dimenPercent:
		return dimen.DU(d.em * float64(base))
	}
	return base
}

// Property formats a dimension as a property value.
func (d DimenT) Property() Property {
	switch d.flags {
	case dimenAbsolute:
		return PointsProperty(d.d)
	case dimenEM:
		return Property(strconv.FormatFloat(d.em, 'g', -1, 64) + "em")
	case dimenPercent:
		return Property(strconv.FormatFloat(d.em*100, 'g', -1, 64) + "%")
	case dimenAuto:
		return "auto"
	}
	return NullStyle
}

// PointsProperty formats a length as a property value in points.
func PointsProperty(du dimen.DU) Property {
	pt := float64(du) / float64(dimen.PT)
	return Property(strconv.FormatFloat(pt, 'f', -1, 64) + "pt")
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     case m.Em(&f):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions.
type Matcher struct {
	dimen DimenT
}

// Just matches fixed dimensions and extracts the value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Em matches relative dimensions and extracts the factor.
func (m *Matcher) Em(f *float64) *Matcher {
	if m.dimen.flags == dimenEM {
		if f != nil {
			*f = m.dimen.em
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts the percentage.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// IsAuto matches Auto().
func (m *Matcher) IsAuto() *Matcher {
	if m.dimen.flags == dimenAuto {
		return m
	}
	return nil
}
