package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Property keys known to the cascade. Other keys are legal and are treated
// as local properties.
const (
	FontStyle       = "font-style"
	FontWeight      = "font-weight"
	FontSize        = "font-size"
	FontFamily      = "font-family"
	LineHeight      = "line-height"
	TextDecoration  = "text-decoration"
	TextAlign       = "text-align"
	Color           = "color"
	BackgroundColor = "background-color"
	LetterSpacing   = "letter-spacing"
	WhiteSpace      = "white-space"
	MarginTop       = "margin-top"
	MarginBottom    = "margin-bottom"
	MarginLeft      = "margin-left"
	MarginRight     = "margin-right"
	PaddingTop      = "padding-top"
	PaddingBottom   = "padding-bottom"
	PaddingLeft     = "padding-left"
	PaddingRight    = "padding-right"
)

// --- Inheritance classes ----------------------------------------------

// Inheritance tells how a property combines along an ancestor chain.
type Inheritance uint8

const (
	Local     Inheritance = iota // applies to the styled node only
	Inherited                    // nearest ancestor wins
	Additive                     // composes with the values of all ancestors
)

func (inh Inheritance) String() string {
	switch inh {
	case Inherited:
		return "inherited"
	case Additive:
		return "additive"
	}
	return "local"
}

// InheritanceOf returns the combination rule for a property key.
func InheritanceOf(key string) Inheritance {
	switch key {
	case FontStyle, FontWeight, TextDecoration:
		return Additive
	case Color, FontSize, FontFamily, LineHeight, TextAlign, LetterSpacing, WhiteSpace:
		return Inherited
	}
	if strings.HasPrefix(key, "list-style") {
		return Inherited
	}
	return Local
}

// --- Property groups ------------------------------------------------------

// Symbolic names for property groups. Groups are used for diagnostic output
// only, they do not influence the cascade.
const (
	PGFont    = "Font"
	PGColor   = "Color"
	PGText    = "Text"
	PGMargins = "Margins"
	PGPadding = "Padding"
	PGX       = "X"
)

var groupNameFromPropertyKey = map[string]string{
	FontStyle:       PGFont,
	FontWeight:      PGFont,
	FontSize:        PGFont,
	FontFamily:      PGFont,
	LineHeight:      PGFont,
	Color:           PGColor,
	BackgroundColor: PGColor,
	TextDecoration:  PGText,
	TextAlign:       PGText,
	LetterSpacing:   PGText,
	WhiteSpace:      PGText,
	MarginTop:       PGMargins,
	MarginBottom:    PGMargins,
	MarginLeft:      PGMargins,
	MarginRight:     PGMargins,
	PaddingTop:      PGPadding,
	PaddingBottom:   PGPadding,
	PaddingLeft:     PGPadding,
	PaddingRight:    PGPadding,
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3pt 6pt")
// will return
//    "padding-top"    => "3pt"
//    "padding-right"  => "6pt"
//    "padding-bottom" => "3pt"
//    "padding-left"   => "6pt"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return split4("margin", fields)
	case "padding":
		return split4("padding", fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func split4(prefix string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", prefix)
	}
	// index into fields for top, right, bottom, left
	var ix [4]int
	switch l {
	case 2:
		ix = [4]int{0, 1, 0, 1}
	case 3:
		ix = [4]int{0, 1, 2, 1}
	case 4:
		ix = [4]int{0, 1, 2, 3}
	}
	r := make([]KeyValue, 4)
	for i, d := range fourDirs {
		r[i] = KeyValue{prefix + "-" + d, Property(fields[ix[i]])}
	}
	return r, nil
}

// --- Conversions ----------------------------------------------------------

var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0, 0, 0xff},
	"green":  {0, 0x80, 0, 0xff},
	"blue":   {0, 0, 0xff, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"silver": {0xc0, 0xc0, 0xc0, 0xff},
	"navy":   {0, 0, 0x80, 0xff},
}

// Color converts a property to a color. Supported are a small set of color
// names and hex notations #rgb and #rrggbb. Returns nil for "default",
// the empty property and unparseable values.
func (p Property) Color() color.Color {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if s == "" || s == "default" {
		return nil
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
			}
		}
	}
	tracer().Debugf("styling: cannot convert %q to color", s)
	return nil
}

// Weight converts a font-weight property to a numeric weight (100…900).
// Unknown values return 400.
func (p Property) Weight() int {
	switch s := strings.ToLower(strings.TrimSpace(string(p))); s {
	case "bold", "bolder":
		return 700
	case "normal", "", "lighter":
		return 400
	default:
		if n, err := strconv.Atoi(s); err == nil && n >= 100 && n <= 900 {
			return n
		}
	}
	return 400
}

// WeightProperty is the inverse of Property.Weight.
func WeightProperty(w int) Property {
	switch w {
	case 400:
		return "normal"
	case 700:
		return "bold"
	}
	return Property(strconv.Itoa(w))
}
