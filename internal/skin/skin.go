package skin

import (
	"log/slog"

	"skinini/internal/logging"
	"skinini/internal/skinfile"
)

// Skin bundles every record resolved from one skin file.
type Skin struct {
	General General `json:"general" yaml:"general"`
	Colours Colours `json:"colours" yaml:"colours"`
	Fonts   Fonts   `json:"fonts" yaml:"fonts"`
	Catch   Catch   `json:"catch_the_beat" yaml:"catch_the_beat"`
	Mania   []Mania `json:"mania" yaml:"mania"`
}

// Option configures resolution.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug output about skipped sections to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = logging.NewComponentLogger(o.logger, "skin")
	return o
}

// Resolve builds the full Skin. Singular sections that repeat are merged,
// later keys winning; absent sections resolve to defaults.
func Resolve(doc *skinfile.Document, opts ...Option) *Skin {
	if doc == nil {
		doc = &skinfile.Document{}
	}
	o := newOptions(opts)
	singular := func(name string) *skinfile.Section {
		section, ok := doc.Merged(name)
		if !ok {
			o.logger.Debug("section absent, using defaults", logging.String(logging.FieldSection, name))
		} else if n := len(doc.Named(name)); n > 1 {
			o.logger.Debug("repeated section merged",
				logging.String(logging.FieldSection, name),
				logging.Int("occurrences", n),
			)
		}
		return section
	}
	return &Skin{
		General: NewGeneral(singular(GeneralSection)),
		Colours: NewColours(singular(ColoursSection)),
		Fonts:   NewFonts(singular(FontsSection)),
		Catch:   NewCatch(singular(CatchSection)),
		Mania:   ResolveMania(doc, opts...),
	}
}
