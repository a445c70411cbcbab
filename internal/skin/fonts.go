package skin

import "skinini/internal/resolve"

// FontsSection is the header of the [Fonts] section.
const FontsSection = "Fonts"

// Fonts is the resolved [Fonts] section.
type Fonts struct {
	HitCircle Font `json:"hit_circle" yaml:"hit_circle"`
	Score     Font `json:"score" yaml:"score"`
	Combo     Font `json:"combo" yaml:"combo"`
}

// Font names a numeric sprite set and the horizontal overlap between glyphs.
type Font struct {
	Prefix  string `json:"prefix" yaml:"prefix"`
	Overlap int32  `json:"overlap" yaml:"overlap"`
}

// NewFonts resolves a [Fonts] section.
func NewFonts(p resolve.Lookup) Fonts {
	font := func(name, prefix string, overlap int32) Font {
		return Font{
			Prefix:  resolve.Scalar(p, name+"Prefix", resolve.Text, prefix),
			Overlap: resolve.Scalar(p, name+"Overlap", resolve.Int32, overlap),
		}
	}
	return Fonts{
		HitCircle: font("HitCircle", defaultHitCirclePrefix, defaultHitCircleOverlap),
		Score:     font("Score", defaultScorePrefix, 0),
		Combo:     font("Combo", defaultComboPrefix, 0),
	}
}
