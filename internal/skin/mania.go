package skin

import (
	"fmt"

	"skinini/internal/logging"
	"skinini/internal/resolve"
	"skinini/internal/skinfile"
)

// ManiaSection is the header of the per key-count sections.
const ManiaSection = "Mania"

var keysSkipReason = fmt.Sprintf("keys must be an integer between 1 and %d", MaxKeyCount)

// Mania is the resolved form of one [Mania] section.
type Mania struct {
	Keys         Keys         `json:"keys" yaml:"keys"`
	SpecialStyle SpecialStyle `json:"special_style" yaml:"special_style"`
	ColumnLayout ColumnLayout `json:"column_layout" yaml:"column_layout"`
	Positions    Positions    `json:"positions" yaml:"positions"`
	Colours      ManiaColours `json:"colours" yaml:"colours"`
	Images       Images       `json:"images" yaml:"images"`
	Behavior     Behavior     `json:"behavior" yaml:"behavior"`
}

// Keys carries the column count that sizes every per-column list.
type Keys struct {
	Count          uint32 `json:"count" yaml:"count"`
	KeysUnderNotes bool   `json:"keys_under_notes" yaml:"keys_under_notes"`
}

// SpecialStyle controls the scratch column layout and split stages.
type SpecialStyle struct {
	Style           uint8  `json:"style" yaml:"style"`
	SplitStages     bool   `json:"split_stages" yaml:"split_stages"`
	StageSeparation uint32 `json:"stage_separation" yaml:"stage_separation"`
	SeparateScore   bool   `json:"separate_score" yaml:"separate_score"`
}

// ColumnLayout holds widths and spacing. The comma lists are kept as written;
// their lengths are not forced to match the key count.
type ColumnLayout struct {
	ColumnStart     uint32        `json:"column_start" yaml:"column_start"`
	ColumnRight     uint32        `json:"column_right" yaml:"column_right"`
	ColumnWidth     []uint32      `json:"column_width" yaml:"column_width"`
	ColumnSpacing   []uint32      `json:"column_spacing" yaml:"column_spacing"`
	ColumnLineWidth []uint32      `json:"column_line_width" yaml:"column_line_width"`
	BarlineHeight   float32       `json:"barline_height" yaml:"barline_height"`
	LightingWidth   LightingWidth `json:"lighting_width" yaml:"lighting_width"`

	// WidthForNoteHeightScale is nil when the skin does not set it.
	WidthForNoteHeightScale *uint32 `json:"width_for_note_height_scale,omitempty" yaml:"width_for_note_height_scale,omitempty"`
}

// LightingWidth holds per-column widths of the note (N) and hold (L) lighting.
type LightingWidth struct {
	N []uint32 `json:"n" yaml:"n"`
	L []uint32 `json:"l" yaml:"l"`
}

// Positions are vertical offsets from the top of the playfield.
type Positions struct {
	Hit   uint32 `json:"hit" yaml:"hit"`
	Light uint32 `json:"light" yaml:"light"`
	Score uint32 `json:"score" yaml:"score"`
	Combo uint32 `json:"combo" yaml:"combo"`
}

// ManiaColours holds per-column and stage colours. Columns and Lights only
// contain the entries that were present and valid, so they may be shorter
// than the key count.
type ManiaColours struct {
	Columns       []resolve.RGBA `json:"columns" yaml:"columns"`
	Lights        []resolve.RGBA `json:"lights" yaml:"lights"`
	ColumnLine    resolve.RGBA   `json:"column_line" yaml:"column_line"`
	Barline       resolve.RGBA   `json:"barline" yaml:"barline"`
	JudgementLine resolve.RGB    `json:"judgement_line" yaml:"judgement_line"`
	KeyWarning    resolve.RGB    `json:"key_warning" yaml:"key_warning"`
	Hold          resolve.RGBA   `json:"hold" yaml:"hold"`
	Break         resolve.RGB    `json:"break" yaml:"break"`
}

// Images groups the sprite names referenced by a [Mania] section.
type Images struct {
	Keys  KeyImages   `json:"keys" yaml:"keys"`
	Notes NoteImages  `json:"notes" yaml:"notes"`
	Stage StageImages `json:"stage" yaml:"stage"`
	Hits  HitImages   `json:"hits" yaml:"hits"`
}

// KeyImages lists per-column key sprites, idle and pressed.
type KeyImages struct {
	Normal  []string `json:"normal" yaml:"normal"`
	Pressed []string `json:"pressed" yaml:"pressed"`
}

// NoteImages lists per-column note sprites and the parts of hold notes.
type NoteImages struct {
	Regular  []string `json:"regular" yaml:"regular"`
	HoldHead []string `json:"hold_head" yaml:"hold_head"`
	HoldBody []string `json:"hold_body" yaml:"hold_body"`
	HoldTail []string `json:"hold_tail" yaml:"hold_tail"`
}

// StageImages names the stage decoration sprites.
type StageImages struct {
	Left         string `json:"left" yaml:"left"`
	Right        string `json:"right" yaml:"right"`
	Bottom       string `json:"bottom" yaml:"bottom"`
	Hint         string `json:"hint" yaml:"hint"`
	Light        string `json:"light" yaml:"light"`
	LightingN    string `json:"lighting_n" yaml:"lighting_n"`
	LightingL    string `json:"lighting_l" yaml:"lighting_l"`
	WarningArrow string `json:"warning_arrow" yaml:"warning_arrow"`
}

// HitImages names the judgement sprites.
type HitImages struct {
	Hit0    string `json:"hit_0" yaml:"hit_0"`
	Hit50   string `json:"hit_50" yaml:"hit_50"`
	Hit100  string `json:"hit_100" yaml:"hit_100"`
	Hit200  string `json:"hit_200" yaml:"hit_200"`
	Hit300  string `json:"hit_300" yaml:"hit_300"`
	Hit300g string `json:"hit_300g" yaml:"hit_300g"`
}

// Behavior collects animation and flip settings.
type Behavior struct {
	JudgementLine       bool          `json:"judgement_line" yaml:"judgement_line"`
	LightFramePerSecond uint32        `json:"light_frame_per_second" yaml:"light_frame_per_second"`
	UpsideDown          bool          `json:"upside_down" yaml:"upside_down"`
	ComboBurstStyle     uint8         `json:"combo_burst_style" yaml:"combo_burst_style"`
	NoteBodyStyle       NoteBodyStyle `json:"note_body_style" yaml:"note_body_style"`
	Flip                FlipConfig    `json:"flip" yaml:"flip"`
}

// NoteBodyStyle is the hold body drawing mode, globally and per column.
type NoteBodyStyle struct {
	Global    uint8   `json:"global" yaml:"global"`
	PerColumn []uint8 `json:"per_column" yaml:"per_column"`
}

// FlipConfig controls whether key and note sprites are flipped when upside down.
type FlipConfig struct {
	KeyFlip           bool              `json:"key_flip" yaml:"key_flip"`
	NoteFlip          bool              `json:"note_flip" yaml:"note_flip"`
	PerColumnKeyFlip  []bool            `json:"per_column_key_flip" yaml:"per_column_key_flip"`
	PerColumnNoteFlip NoteFlipPerColumn `json:"per_column_note_flip" yaml:"per_column_note_flip"`
}

// NoteFlipPerColumn holds per-column flips for notes and each hold note part.
type NoteFlipPerColumn struct {
	Note     []bool `json:"note" yaml:"note"`
	HoldHead []bool `json:"hold_head" yaml:"hold_head"`
	HoldBody []bool `json:"hold_body" yaml:"hold_body"`
	HoldTail []bool `json:"hold_tail" yaml:"hold_tail"`
}

// ResolveMania resolves every [Mania] section of doc in document order.
// Sections without a usable Keys value are skipped.
func ResolveMania(doc *skinfile.Document, opts ...Option) []Mania {
	o := newOptions(opts)
	out := []Mania{}
	if doc == nil {
		return out
	}
	for index, section := range doc.Named(ManiaSection) {
		keyCount, ok := KeyCount(section)
		if !ok {
			raw, _ := section.Get("Keys")
			attrs := append([]logging.Attr{
				logging.Int("section_index", index),
				logging.String("keys", raw),
			}, logging.DecisionAttrs("mania_section", "skipped", keysSkipReason)...)
			o.logger.Debug("mania section skipped", logging.Args(attrs...)...)
			continue
		}
		out = append(out, NewMania(section, keyCount))
	}
	o.logger.Debug("mania sections resolved", logging.Int("count", len(out)))
	return out
}

// KeyCount reports the Keys value of a section when it is usable.
func KeyCount(p resolve.Lookup) (uint32, bool) {
	raw, ok := p.Get("Keys")
	if !ok {
		return 0, false
	}
	n, ok := resolve.Uint32(raw)
	if !ok || n == 0 || n > MaxKeyCount {
		return 0, false
	}
	return n, true
}

// NewMania builds a Mania record from a single section. keyCount fixes the
// length of every per-column family.
func NewMania(p resolve.Lookup, keyCount uint32) Mania {
	return Mania{
		Keys:         newKeys(p, keyCount),
		SpecialStyle: newSpecialStyle(p),
		ColumnLayout: newColumnLayout(p),
		Positions:    newPositions(p),
		Colours:      newManiaColours(p, keyCount),
		Images:       newImages(p, keyCount),
		Behavior:     newBehavior(p, keyCount),
	}
}

func newKeys(p resolve.Lookup, keyCount uint32) Keys {
	return Keys{
		Count:          keyCount,
		KeysUnderNotes: resolve.Scalar(p, "KeysUnderNotes", resolve.Flag, false),
	}
}

func newSpecialStyle(p resolve.Lookup) SpecialStyle {
	return SpecialStyle{
		Style:           resolve.Scalar(p, "SpecialStyle", resolve.Uint8, 0),
		SplitStages:     resolve.Scalar(p, "SplitStages", resolve.Flag, false),
		StageSeparation: resolve.Scalar(p, "StageSeparation", resolve.Uint32, 0),
		SeparateScore:   resolve.Scalar(p, "SeparateScore", resolve.Flag, false),
	}
}

func newColumnLayout(p resolve.Lookup) ColumnLayout {
	return ColumnLayout{
		ColumnStart:     resolve.Scalar(p, "ColumnStart", resolve.Uint32, 0),
		ColumnRight:     resolve.Scalar(p, "ColumnRight", resolve.Uint32, 0),
		ColumnWidth:     resolve.CommaList(p, "ColumnWidth"),
		ColumnSpacing:   resolve.CommaList(p, "ColumnSpacing"),
		ColumnLineWidth: resolve.CommaList(p, "ColumnLineWidth"),
		BarlineHeight:   resolve.Scalar(p, "BarlineHeight", resolve.Float32, defaultBarlineHeight),
		LightingWidth: LightingWidth{
			N: resolve.CommaList(p, "LightingNWidth"),
			L: resolve.CommaList(p, "LightingLWidth"),
		},
		WidthForNoteHeightScale: resolve.Optional(p, "WidthForNoteHeightScale", resolve.Uint32),
	}
}

func newPositions(p resolve.Lookup) Positions {
	return Positions{
		Hit:   resolve.Scalar(p, "HitPosition", resolve.Uint32, 0),
		Light: resolve.Scalar(p, "LightPosition", resolve.Uint32, 0),
		Score: resolve.Scalar(p, "ScorePosition", resolve.Uint32, 0),
		Combo: resolve.Scalar(p, "ComboPosition", resolve.Uint32, 0),
	}
}

func newManiaColours(p resolve.Lookup, keyCount uint32) ManiaColours {
	return ManiaColours{
		Columns:       resolve.ColorFamily(p, "Colour", keyCount),
		Lights:        resolve.ColorFamily(p, "ColourLight", keyCount),
		ColumnLine:    resolve.Scalar(p, "ColourColumnLine", resolve.ParseRGBA, defaultColumnLineColour),
		Barline:       resolve.Scalar(p, "ColourBarline", resolve.ParseRGBA, defaultBarlineColour),
		JudgementLine: resolve.Scalar(p, "ColourJudgementLine", resolve.ParseRGB, defaultJudgementLineColour),
		KeyWarning:    resolve.Scalar(p, "ColourKeyWarning", resolve.ParseRGB, defaultKeyWarningColour),
		Hold:          resolve.Scalar(p, "ColourHold", resolve.ParseRGBA, defaultHoldColour),
		Break:         resolve.Scalar(p, "ColourBreak", resolve.ParseRGB, defaultBreakColour),
	}
}

func newImages(p resolve.Lookup, keyCount uint32) Images {
	text := func(key string) string { return resolve.Scalar(p, key, resolve.Text, "") }
	family := func(prefix, suffix string) []string {
		return resolve.Family(p, prefix, suffix, keyCount, resolve.Text, "")
	}
	return Images{
		Keys: KeyImages{
			Normal:  family("KeyImage", ""),
			Pressed: family("KeyImage", "D"),
		},
		Notes: NoteImages{
			Regular:  family("NoteImage", ""),
			HoldHead: family("NoteImage", "H"),
			HoldBody: family("NoteImage", "L"),
			HoldTail: family("NoteImage", "T"),
		},
		Stage: StageImages{
			Left:         text("StageLeft"),
			Right:        text("StageRight"),
			Bottom:       text("StageBottom"),
			Hint:         text("StageHint"),
			Light:        text("StageLight"),
			LightingN:    text("StageLightingN"),
			LightingL:    text("StageLightingL"),
			WarningArrow: text("WarningArrow"),
		},
		Hits: HitImages{
			Hit0:    text("Hit0"),
			Hit50:   text("Hit50"),
			Hit100:  text("Hit100"),
			Hit200:  text("Hit200"),
			Hit300:  text("Hit300"),
			Hit300g: text("Hit300g"),
		},
	}
}

func newBehavior(p resolve.Lookup, keyCount uint32) Behavior {
	flags := func(prefix string) []bool {
		return resolve.Family(p, prefix, "", keyCount, resolve.Flag, false)
	}
	return Behavior{
		JudgementLine:       resolve.Scalar(p, "JudgementLine", resolve.Flag, false),
		LightFramePerSecond: resolve.Scalar(p, "LightFramePerSecond", resolve.Uint32, defaultLightFramePerSecond),
		UpsideDown:          resolve.Scalar(p, "UpsideDown", resolve.Flag, false),
		ComboBurstStyle:     resolve.Scalar(p, "ComboBurstStyle", resolve.Uint8, 0),
		NoteBodyStyle: NoteBodyStyle{
			Global:    resolve.Scalar(p, "NoteBodyStyle", resolve.Uint8, 0),
			PerColumn: resolve.Family(p, "NoteBodyStyle", "", keyCount, resolve.Uint8, 0),
		},
		Flip: FlipConfig{
			KeyFlip:          resolve.Scalar(p, "KeyFlip", resolve.Flag, false),
			NoteFlip:         resolve.Scalar(p, "NoteFlip", resolve.Flag, false),
			PerColumnKeyFlip: flags("KeyFlip"),
			PerColumnNoteFlip: NoteFlipPerColumn{
				Note:     flags("NoteFlip"),
				HoldHead: flags("NoteFlipH"),
				HoldBody: flags("NoteFlipL"),
				HoldTail: flags("NoteFlipT"),
			},
		},
	}
}
