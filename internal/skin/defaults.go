package skin

import "skinini/internal/resolve"

// MaxKeyCount bounds the Keys value of a [Mania] section. Every per-column
// list is allocated with Keys entries, so an unbounded value such as
// 4294967295 would allocate billions of elements per list. Larger values are
// treated like unparsable ones.
const MaxKeyCount = 128

const (
	defaultBarlineHeight       float32 = 1.0
	defaultLightFramePerSecond uint32  = 24

	defaultSkinName           = "Unknown"
	defaultSkinVersion        = "latest"
	defaultAnimationFramerate = -1

	defaultHitCirclePrefix  = "default"
	defaultHitCircleOverlap = -2
	defaultScorePrefix      = "score"
	defaultComboPrefix      = "score"
)

var (
	defaultColumnLineColour    = resolve.RGBA{R: 255, G: 255, B: 255, A: 255}
	defaultBarlineColour       = resolve.RGBA{R: 255, G: 255, B: 255, A: 255}
	defaultJudgementLineColour = resolve.RGB{R: 255, G: 255, B: 255}
	defaultKeyWarningColour    = resolve.RGB{R: 255, G: 0, B: 0}
	defaultHoldColour          = resolve.RGBA{R: 255, G: 230, B: 0, A: 255}
	defaultBreakColour         = resolve.RGB{R: 255, G: 0, B: 0}

	defaultComboColours = [4]resolve.RGB{
		{R: 255, G: 192, B: 0},
		{R: 0, G: 202, B: 0},
		{R: 18, G: 124, B: 255},
		{R: 242, G: 24, B: 57},
	}
	defaultMenuGlow               = resolve.RGB{R: 0, G: 78, B: 155}
	defaultSongSelectActiveText   = resolve.RGB{R: 0, G: 0, B: 0}
	defaultSongSelectInactiveText = resolve.RGB{R: 255, G: 255, B: 255}
	defaultInputOverlayText       = resolve.RGB{R: 0, G: 0, B: 0}
	defaultSliderBall             = resolve.RGB{R: 2, G: 170, B: 255}
	defaultSliderBorder           = resolve.RGB{R: 255, G: 255, B: 255}
	defaultSpinnerBackground      = resolve.RGB{R: 100, G: 100, B: 100}
	defaultStarBreakAdditive      = resolve.RGB{R: 255, G: 182, B: 193}

	defaultHyperDash = resolve.RGB{R: 255, G: 0, B: 0}
)
