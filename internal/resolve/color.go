package resolve

import (
	"fmt"
	"strings"
)

// RGBA is an 8-bit colour with alpha.
type RGBA struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// RGB is an 8-bit colour without alpha.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

func (c RGBA) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

const opaque = 255

// ParseRGBA reads "r,g,b[,a]". At least three components are required and
// each of them must convert; the alpha defaults to 255 when it is missing or
// does not convert.
func ParseRGBA(value string) (RGBA, bool) {
	parts := strings.Split(value, ",")
	rgb, ok := parseComponents(parts)
	if !ok {
		return RGBA{}, false
	}
	colour := RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: opaque}
	if len(parts) > 3 {
		if a, ok := Uint8(strings.TrimSpace(parts[3])); ok {
			colour.A = a
		}
	}
	return colour, true
}

// ParseRGB reads "r,g,b". Components beyond the third are ignored.
func ParseRGB(value string) (RGB, bool) {
	return parseComponents(strings.Split(value, ","))
}

func parseComponents(parts []string) (RGB, bool) {
	if len(parts) < 3 {
		return RGB{}, false
	}
	var out [3]uint8
	for i := range out {
		c, ok := Uint8(strings.TrimSpace(parts[i]))
		if !ok {
			return RGB{}, false
		}
		out[i] = c
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, true
}
