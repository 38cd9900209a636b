package utils

import (
	"fmt"
	"image/color"
	"regexp"
)

// Colour is an RGBA colour normalised to [0,1], the form the GL clear
// colour wants.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	match, err := regexp.Match(`#[0-9A-Fa-f]{8}`, []byte(c))
	if err != nil {
		panic(err)
	}
	return match
}

func ColourParse(s string) (c color.RGBA) {
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}

func ColourToFloat(c color.RGBA) Colour {
	return Colour{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}
