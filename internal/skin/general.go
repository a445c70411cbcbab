package skin

import "skinini/internal/resolve"

// GeneralSection is the header of the [General] section.
const GeneralSection = "General"

// General is the resolved [General] section.
type General struct {
	Metadata Metadata       `json:"metadata" yaml:"metadata"`
	Cursor   Cursor         `json:"cursor" yaml:"cursor"`
	Spinner  Spinner        `json:"spinner" yaml:"spinner"`
	Gameplay GeneralOptions `json:"gameplay" yaml:"gameplay"`
}

// Metadata identifies the skin.
type Metadata struct {
	Name               string `json:"name" yaml:"name"`
	Author             string `json:"author" yaml:"author"`
	Version            string `json:"version" yaml:"version"`
	AnimationFramerate int32  `json:"animation_framerate" yaml:"animation_framerate"`
}

// Cursor holds cursor animation switches.
type Cursor struct {
	Centre      bool `json:"centre" yaml:"centre"`
	Expand      bool `json:"expand" yaml:"expand"`
	Rotate      bool `json:"rotate" yaml:"rotate"`
	TrailRotate bool `json:"trail_rotate" yaml:"trail_rotate"`
}

// Spinner holds spinner display switches.
type Spinner struct {
	FadePlayfield     bool `json:"fade_playfield" yaml:"fade_playfield"`
	FrequencyModulate bool `json:"frequency_modulate" yaml:"frequency_modulate"`
	NoBlink           bool `json:"no_blink" yaml:"no_blink"`
}

// GeneralOptions holds the remaining gameplay switches of [General].
type GeneralOptions struct {
	AllowSliderBallTint         bool     `json:"allow_slider_ball_tint" yaml:"allow_slider_ball_tint"`
	ComboBurstRandom            bool     `json:"combo_burst_random" yaml:"combo_burst_random"`
	CustomComboBurstSounds      []uint32 `json:"custom_combo_burst_sounds" yaml:"custom_combo_burst_sounds"`
	HitCircleOverlayAboveNumber bool     `json:"hit_circle_overlay_above_number" yaml:"hit_circle_overlay_above_number"`
	LayeredHitSounds            bool     `json:"layered_hit_sounds" yaml:"layered_hit_sounds"`
	SliderBallFlip              bool     `json:"slider_ball_flip" yaml:"slider_ball_flip"`
}

// misspelled key still written by older skins
const legacyOverlayKey = "HitCircleOverlayAboveNumer"

// NewGeneral resolves a [General] section. An empty Lookup yields the defaults.
func NewGeneral(p resolve.Lookup) General {
	overlayKey := "HitCircleOverlayAboveNumber"
	if _, ok := p.Get(overlayKey); !ok {
		if _, legacy := p.Get(legacyOverlayKey); legacy {
			overlayKey = legacyOverlayKey
		}
	}
	return General{
		Metadata: Metadata{
			Name:               resolve.Scalar(p, "Name", resolve.Text, defaultSkinName),
			Author:             resolve.Scalar(p, "Author", resolve.Text, ""),
			Version:            resolve.Scalar(p, "Version", resolve.Text, defaultSkinVersion),
			AnimationFramerate: resolve.Scalar(p, "AnimationFramerate", resolve.Int32, defaultAnimationFramerate),
		},
		Cursor: Cursor{
			Centre:      resolve.Scalar(p, "CursorCentre", resolve.Flag, true),
			Expand:      resolve.Scalar(p, "CursorExpand", resolve.Flag, true),
			Rotate:      resolve.Scalar(p, "CursorRotate", resolve.Flag, true),
			TrailRotate: resolve.Scalar(p, "CursorTrailRotate", resolve.Flag, true),
		},
		Spinner: Spinner{
			FadePlayfield:     resolve.Scalar(p, "SpinnerFadePlayfield", resolve.Flag, false),
			FrequencyModulate: resolve.Scalar(p, "SpinnerFrequencyModulate", resolve.Flag, true),
			NoBlink:           resolve.Scalar(p, "SpinnerNoBlink", resolve.Flag, false),
		},
		Gameplay: GeneralOptions{
			AllowSliderBallTint:         resolve.Scalar(p, "AllowSliderBallTint", resolve.Flag, false),
			ComboBurstRandom:            resolve.Scalar(p, "ComboBurstRandom", resolve.Flag, false),
			CustomComboBurstSounds:      resolve.CommaList(p, "CustomComboBurstSounds"),
			HitCircleOverlayAboveNumber: resolve.Scalar(p, overlayKey, resolve.Flag, true),
			LayeredHitSounds:            resolve.Scalar(p, "LayeredHitSounds", resolve.Flag, true),
			SliderBallFlip:              resolve.Scalar(p, "SliderBallFlip", resolve.Flag, true),
		},
	}
}
