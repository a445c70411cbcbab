package skin

import "skinini/internal/resolve"

// ColoursSection is the header of the [Colours] section.
const ColoursSection = "Colours"

// Colours is the resolved [Colours] section.
type Colours struct {
	Combo     ComboColours     `json:"combo" yaml:"combo"`
	Interface InterfaceColours `json:"interface" yaml:"interface"`
	Gameplay  GameplayColours  `json:"gameplay" yaml:"gameplay"`
}

// ComboColours always carries four colours. Combo5 to Combo8 are nil unless
// the skin sets them.
type ComboColours struct {
	Combo1 resolve.RGB  `json:"combo1" yaml:"combo1"`
	Combo2 resolve.RGB  `json:"combo2" yaml:"combo2"`
	Combo3 resolve.RGB  `json:"combo3" yaml:"combo3"`
	Combo4 resolve.RGB  `json:"combo4" yaml:"combo4"`
	Combo5 *resolve.RGB `json:"combo5,omitempty" yaml:"combo5,omitempty"`
	Combo6 *resolve.RGB `json:"combo6,omitempty" yaml:"combo6,omitempty"`
	Combo7 *resolve.RGB `json:"combo7,omitempty" yaml:"combo7,omitempty"`
	Combo8 *resolve.RGB `json:"combo8,omitempty" yaml:"combo8,omitempty"`
}

// Active returns the combo colours in order, skipping unset optional ones.
func (c ComboColours) Active() []resolve.RGB {
	out := []resolve.RGB{c.Combo1, c.Combo2, c.Combo3, c.Combo4}
	for _, extra := range []*resolve.RGB{c.Combo5, c.Combo6, c.Combo7, c.Combo8} {
		if extra != nil {
			out = append(out, *extra)
		}
	}
	return out
}

// InterfaceColours tint menus and overlays.
type InterfaceColours struct {
	MenuGlow               resolve.RGB `json:"menu_glow" yaml:"menu_glow"`
	SongSelectActiveText   resolve.RGB `json:"song_select_active_text" yaml:"song_select_active_text"`
	SongSelectInactiveText resolve.RGB `json:"song_select_inactive_text" yaml:"song_select_inactive_text"`
	InputOverlayText       resolve.RGB `json:"input_overlay_text" yaml:"input_overlay_text"`
}

// GameplayColours tint sliders, spinners and breaks.
type GameplayColours struct {
	SliderBall          resolve.RGB  `json:"slider_ball" yaml:"slider_ball"`
	SliderBorder        resolve.RGB  `json:"slider_border" yaml:"slider_border"`
	SliderTrackOverride *resolve.RGB `json:"slider_track_override,omitempty" yaml:"slider_track_override,omitempty"`
	SpinnerBackground   resolve.RGB  `json:"spinner_background" yaml:"spinner_background"`
	StarBreakAdditive   resolve.RGB  `json:"star_break_additive" yaml:"star_break_additive"`
}

// NewColours resolves a [Colours] section.
func NewColours(p resolve.Lookup) Colours {
	rgb := func(key string, def resolve.RGB) resolve.RGB {
		return resolve.Scalar(p, key, resolve.ParseRGB, def)
	}
	optional := func(key string) *resolve.RGB {
		return resolve.Optional(p, key, resolve.ParseRGB)
	}
	return Colours{
		Combo: ComboColours{
			Combo1: rgb("Combo1", defaultComboColours[0]),
			Combo2: rgb("Combo2", defaultComboColours[1]),
			Combo3: rgb("Combo3", defaultComboColours[2]),
			Combo4: rgb("Combo4", defaultComboColours[3]),
			Combo5: optional("Combo5"),
			Combo6: optional("Combo6"),
			Combo7: optional("Combo7"),
			Combo8: optional("Combo8"),
		},
		Interface: InterfaceColours{
			MenuGlow:               rgb("MenuGlow", defaultMenuGlow),
			SongSelectActiveText:   rgb("SongSelectActiveText", defaultSongSelectActiveText),
			SongSelectInactiveText: rgb("SongSelectInactiveText", defaultSongSelectInactiveText),
			InputOverlayText:       rgb("InputOverlayText", defaultInputOverlayText),
		},
		Gameplay: GameplayColours{
			SliderBall:          rgb("SliderBall", defaultSliderBall),
			SliderBorder:        rgb("SliderBorder", defaultSliderBorder),
			SliderTrackOverride: optional("SliderTrackOverride"),
			SpinnerBackground:   rgb("SpinnerBackground", defaultSpinnerBackground),
			StarBreakAdditive:   rgb("StarBreakAdditive", defaultStarBreakAdditive),
		},
	}
}
