package core

import "fmt"

// Color is one of the fixed avatar colors a profile may use.
type Color uint8

// Palette entries, in the order defaults are assigned.
const (
	ColorBlue Color = iota
	ColorGreen
	ColorRed
	ColorYellow
	ColorPurple
	ColorTeal
	ColorLightRed
	ColorLightBlue
	ColorEmerald
	ColorDarkOrange
	ColorViolet
	ColorTurquoise

	colorCount
)

var colorHex = [colorCount]string{
	ColorBlue:       "#1a73e8",
	ColorGreen:      "#34a853",
	ColorRed:        "#ea4335",
	ColorYellow:     "#fbbc04",
	ColorPurple:     "#8e44ad",
	ColorTeal:       "#16a085",
	ColorLightRed:   "#e74c3c",
	ColorLightBlue:  "#3498db",
	ColorEmerald:    "#2ecc71",
	ColorDarkOrange: "#e67e22",
	ColorViolet:     "#9b59b6",
	ColorTurquoise:  "#1abc9c",
}

// Palette returns every available color in assignment order.
func Palette() []Color {
	colors := make([]Color, 0, colorCount)
	for c := Color(0); c < colorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}

// DefaultColor picks the palette entry for the n-th registrant (0-based).
func DefaultColor(n int) Color {
	if n < 0 {
		n = -n
	}
	return Color(n % int(colorCount))
}

// ParseColor maps a hex string to a palette color.
func ParseColor(s string) (Color, error) {
	for c, hex := range colorHex {
		if hex == s {
			return Color(c), nil
		}
	}
	return 0, ErrInvalidColor
}

func (c Color) String() string {
	if c >= colorCount {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorHex[c]
}

// MarshalText encodes the color as its hex value.
func (c Color) MarshalText() ([]byte, error) {
	if c >= colorCount {
		return nil, fmt.Errorf("color %d out of palette", uint8(c))
	}
	return []byte(colorHex[c]), nil
}

// UnmarshalText decodes a hex value, rejecting anything outside the palette.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Shape is the avatar outline drawn next to a sender's name.
type Shape uint8

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeDiamond

	shapeCount
)

var shapeNames = [shapeCount]string{
	ShapeSquare:  "square",
	ShapeCircle:  "circle",
	ShapeDiamond: "diamond",
}

// Shapes returns every avatar shape.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeCircle, ShapeDiamond}
}

// ParseShape maps a shape name to a Shape.
func ParseShape(s string) (Shape, error) {
	for sh, name := range shapeNames {
		if name == s {
			return Shape(sh), nil
		}
	}
	return 0, ErrInvalidShape
}

func (s Shape) String() string {
	if s >= shapeCount {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeNames[s]
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	if s >= shapeCount {
		return nil, fmt.Errorf("shape %d out of range", uint8(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText decodes a shape name.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
