package skin

import "skinini/internal/resolve"

// CatchSection is the header of the catch mode section.
const CatchSection = "CatchTheBeat"

// Catch is the resolved [CatchTheBeat] section.
type Catch struct {
	HyperDash           resolve.RGB  `json:"hyper_dash" yaml:"hyper_dash"`
	HyperDashFruit      *resolve.RGB `json:"hyper_dash_fruit,omitempty" yaml:"hyper_dash_fruit,omitempty"`
	HyperDashAfterImage *resolve.RGB `json:"hyper_dash_after_image,omitempty" yaml:"hyper_dash_after_image,omitempty"`
}

// NewCatch resolves a [CatchTheBeat] section.
func NewCatch(p resolve.Lookup) Catch {
	return Catch{
		HyperDash:           resolve.Scalar(p, "HyperDash", resolve.ParseRGB, defaultHyperDash),
		HyperDashFruit:      resolve.Optional(p, "HyperDashFruit", resolve.ParseRGB),
		HyperDashAfterImage: resolve.Optional(p, "HyperDashAfterImage", resolve.ParseRGB),
	}
}

// FruitColour is the hyper-dash fruit tint, falling back to HyperDash.
func (c Catch) FruitColour() resolve.RGB {
	if c.HyperDashFruit != nil {
		return *c.HyperDashFruit
	}
	return c.HyperDash
}

// AfterImageColour is the hyper-dash trail tint, falling back to HyperDash.
func (c Catch) AfterImageColour() resolve.RGB {
	if c.HyperDashAfterImage != nil {
		return *c.HyperDashAfterImage
	}
	return c.HyperDash
}
