package skin_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"skinini/internal/resolve"
	"skinini/internal/skin"
	"skinini/internal/skinfile"
)

func mustParse(t *testing.T, raw string) *skinfile.Document {
	t.Helper()
	doc, err := skinfile.ParseString(raw)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc
}

func TestResolveManiaKeysOnly(t *testing.T) {
	configs := skin.ResolveMania(mustParse(t, "[Mania]\nKeys: 4\n"))
	if len(configs) != 1 {
		t.Fatalf("expected one config, got %d", len(configs))
	}
	m := configs[0]
	if m.Keys.Count != 4 {
		t.Fatalf("Keys.Count = %d, want 4", m.Keys.Count)
	}
	if m.Keys.KeysUnderNotes {
		t.Fatal("expected KeysUnderNotes false")
	}
	if len(m.Colours.Columns) != 0 || len(m.Colours.Lights) != 0 {
		t.Fatalf("expected empty colour families, got %v / %v", m.Colours.Columns, m.Colours.Lights)
	}
	allFalse := []bool{false, false, false, false}
	families := map[string][]bool{
		"per_column_key_flip": m.Behavior.Flip.PerColumnKeyFlip,
		"note":                m.Behavior.Flip.PerColumnNoteFlip.Note,
		"hold_head":           m.Behavior.Flip.PerColumnNoteFlip.HoldHead,
		"hold_body":           m.Behavior.Flip.PerColumnNoteFlip.HoldBody,
		"hold_tail":           m.Behavior.Flip.PerColumnNoteFlip.HoldTail,
	}
	for name, got := range families {
		if diff := cmp.Diff(allFalse, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
	if diff := cmp.Diff([]uint8{0, 0, 0, 0}, m.Behavior.NoteBodyStyle.PerColumn); diff != "" {
		t.Fatalf("note body style mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "", "", ""}, m.Images.Keys.Pressed); diff != "" {
		t.Fatalf("pressed key images mismatch (-want +got):\n%s", diff)
	}
	if m.Behavior.LightFramePerSecond != 24 {
		t.Fatalf("LightFramePerSecond = %d, want 24", m.Behavior.LightFramePerSecond)
	}
	if m.ColumnLayout.BarlineHeight != 1.0 {
		t.Fatalf("BarlineHeight = %v, want 1", m.ColumnLayout.BarlineHeight)
	}
	if m.ColumnLayout.WidthForNoteHeightScale != nil {
		t.Fatalf("expected WidthForNoteHeightScale unset, got %d", *m.ColumnLayout.WidthForNoteHeightScale)
	}
	if m.ColumnLayout.ColumnWidth == nil || len(m.ColumnLayout.ColumnWidth) != 0 {
		t.Fatalf("expected empty non-nil ColumnWidth, got %#v", m.ColumnLayout.ColumnWidth)
	}
}

func TestResolveManiaSkipsUnusableKeys(t *testing.T) {
	raw := `
[Mania]
ColumnStart: 10
[Mania]
Keys: abc
[Mania]
Keys: 0
[Mania]
Keys: 129
[Mania]
Keys: -4
[Mania]
Keys: 7
`
	configs := skin.ResolveMania(mustParse(t, raw))
	if len(configs) != 1 {
		t.Fatalf("expected one usable config, got %d", len(configs))
	}
	if configs[0].Keys.Count != 7 {
		t.Fatalf("Keys.Count = %d, want 7", configs[0].Keys.Count)
	}
}

func TestResolveManiaEmpty(t *testing.T) {
	configs := skin.ResolveMania(mustParse(t, "[General]\nName: x\n"))
	if configs == nil || len(configs) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", configs)
	}
	if got := skin.ResolveMania(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result for nil document, got %#v", got)
	}
}

func TestResolveManiaKeepsDocumentOrder(t *testing.T) {
	raw := "[Mania]\nKeys: 7\n[Colours]\nCombo1: 1,1,1\n[Mania]\nKeys: 4\n[Mania]\nKeys: 1\n"
	var counts []uint32
	for _, m := range skin.ResolveMania(mustParse(t, raw)) {
		counts = append(counts, m.Keys.Count)
	}
	if diff := cmp.Diff([]uint32{7, 4, 1}, counts); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveManiaIsIdempotent(t *testing.T) {
	doc := mustParse(t, sampleSkin)
	first := skin.ResolveMania(doc)
	second := skin.ResolveMania(doc)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolving twice differs (-first +second):\n%s", diff)
	}
}

func TestNewManiaKeys(t *testing.T) {
	m := skin.NewMania(resolve.Props{"KeysUnderNotes": "1"}, 4)
	if !m.Keys.KeysUnderNotes {
		t.Fatal("expected KeysUnderNotes true")
	}
	m = skin.NewMania(resolve.Props{"KeysUnderNotes": "true"}, 4)
	if m.Keys.KeysUnderNotes {
		t.Fatal("expected literal true to fall back to the default")
	}
}

func TestNewManiaSpecialStyle(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"SpecialStyle":    "2",
		"SplitStages":     "1",
		"StageSeparation": "10",
		"SeparateScore":   "1",
	}, 4)
	want := skin.SpecialStyle{Style: 2, SplitStages: true, StageSeparation: 10, SeparateScore: true}
	if diff := cmp.Diff(want, m.SpecialStyle); diff != "" {
		t.Fatalf("special style mismatch (-want +got):\n%s", diff)
	}
}

func TestNewManiaColumnLayout(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"ColumnStart":             "10",
		"ColumnRight":             "20",
		"ColumnWidth":             "32,32,32",
		"ColumnSpacing":           "2,2",
		"ColumnLineWidth":         "1,1,1",
		"BarlineHeight":           "1.5",
		"WidthForNoteHeightScale": "100",
		"LightingNWidth":          "2,3,4",
		"LightingLWidth":          "5, 6, x, 7",
	}, 3)
	layout := m.ColumnLayout
	if layout.ColumnStart != 10 || layout.ColumnRight != 20 {
		t.Fatalf("unexpected column bounds: %d..%d", layout.ColumnStart, layout.ColumnRight)
	}
	if diff := cmp.Diff([]uint32{32, 32, 32}, layout.ColumnWidth); diff != "" {
		t.Fatalf("column width mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint32{2, 2}, layout.ColumnSpacing); diff != "" {
		t.Fatalf("column spacing mismatch (-want +got):\n%s", diff)
	}
	if layout.BarlineHeight != 1.5 {
		t.Fatalf("BarlineHeight = %v, want 1.5", layout.BarlineHeight)
	}
	if layout.WidthForNoteHeightScale == nil || *layout.WidthForNoteHeightScale != 100 {
		t.Fatalf("WidthForNoteHeightScale = %v, want 100", layout.WidthForNoteHeightScale)
	}
	want := skin.LightingWidth{N: []uint32{2, 3, 4}, L: []uint32{5, 6, 7}}
	if diff := cmp.Diff(want, layout.LightingWidth); diff != "" {
		t.Fatalf("lighting width mismatch (-want +got):\n%s", diff)
	}
}

func TestNewManiaPositions(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"HitPosition":   "400",
		"LightPosition": "200",
		"ScorePosition": "300",
		"ComboPosition": "350",
	}, 4)
	want := skin.Positions{Hit: 400, Light: 200, Score: 300, Combo: 350}
	if diff := cmp.Diff(want, m.Positions); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestNewManiaColours(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"Colour1":             "10,20,30",
		"Colour2":             "broken",
		"Colour4":             "40,50,60,70",
		"ColourLight1":        "1,2,3",
		"ColourColumnLine":    "0,0,0,128",
		"ColourJudgementLine": "1,2,3,4",
		"ColourHold":          "not,a,colour",
	}, 4)
	c := m.Colours
	wantColumns := []resolve.RGBA{{R: 10, G: 20, B: 30, A: 255}, {R: 40, G: 50, B: 60, A: 70}}
	if diff := cmp.Diff(wantColumns, c.Columns); diff != "" {
		t.Fatalf("column colours mismatch (-want +got):\n%s", diff)
	}
	if len(c.Lights) != 1 {
		t.Fatalf("expected one light colour, got %d", len(c.Lights))
	}
	if c.ColumnLine != (resolve.RGBA{A: 128}) {
		t.Fatalf("ColumnLine = %v", c.ColumnLine)
	}
	if c.JudgementLine != (resolve.RGB{R: 1, G: 2, B: 3}) {
		t.Fatalf("JudgementLine = %v", c.JudgementLine)
	}
	if c.Hold != (resolve.RGBA{R: 255, G: 230, B: 0, A: 255}) {
		t.Fatalf("Hold should fall back to default, got %v", c.Hold)
	}
	if c.Barline != (resolve.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("Barline = %v", c.Barline)
	}
	if c.KeyWarning != (resolve.RGB{R: 255}) || c.Break != (resolve.RGB{R: 255}) {
		t.Fatalf("unexpected warning/break colours: %v %v", c.KeyWarning, c.Break)
	}
}

func TestNewManiaImages(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"KeyImage0":      "key0.png",
		"KeyImage1D":     "key1d.png",
		"NoteImage0H":    "head.png",
		"NoteImage1L":    "body.png",
		"NoteImage1T":    "tail.png",
		"StageLeft":      "left.png",
		"StageLightingN": "lighting_n.png",
		"WarningArrow":   "warning.png",
		"Hit300g":        "hit300g.png",
	}, 2)
	img := m.Images
	if diff := cmp.Diff([]string{"key0.png", ""}, img.Keys.Normal); diff != "" {
		t.Fatalf("normal key images mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "key1d.png"}, img.Keys.Pressed); diff != "" {
		t.Fatalf("pressed key images mismatch (-want +got):\n%s", diff)
	}
	want := skin.NoteImages{
		Regular:  []string{"", ""},
		HoldHead: []string{"head.png", ""},
		HoldBody: []string{"", "body.png"},
		HoldTail: []string{"", "tail.png"},
	}
	if diff := cmp.Diff(want, img.Notes); diff != "" {
		t.Fatalf("note images mismatch (-want +got):\n%s", diff)
	}
	if img.Stage.Left != "left.png" || img.Stage.LightingN != "lighting_n.png" || img.Stage.WarningArrow != "warning.png" {
		t.Fatalf("unexpected stage images: %+v", img.Stage)
	}
	if img.Hits.Hit300g != "hit300g.png" || img.Hits.Hit0 != "" {
		t.Fatalf("unexpected hit images: %+v", img.Hits)
	}
}

func TestNewManiaBehavior(t *testing.T) {
	m := skin.NewMania(resolve.Props{
		"JudgementLine":       "1",
		"LightFramePerSecond": "60",
		"UpsideDown":          "2",
		"ComboBurstStyle":     "1",
		"NoteBodyStyle":       "2",
		"NoteBodyStyle1":      "1",
		"NoteBodyStyle2":      "300",
		"KeyFlip":             "1",
		"KeyFlip0":            "1",
		"NoteFlipH2":          "1",
		"NoteFlipT1":          "true",
	}, 3)
	b := m.Behavior
	if !b.JudgementLine || !b.UpsideDown || b.LightFramePerSecond != 60 || b.ComboBurstStyle != 1 {
		t.Fatalf("unexpected scalar behaviour: %+v", b)
	}
	want := skin.NoteBodyStyle{Global: 2, PerColumn: []uint8{0, 1, 0}}
	if diff := cmp.Diff(want, b.NoteBodyStyle); diff != "" {
		t.Fatalf("note body style mismatch (-want +got):\n%s", diff)
	}
	if !b.Flip.KeyFlip || b.Flip.NoteFlip {
		t.Fatalf("unexpected global flips: %+v", b.Flip)
	}
	if diff := cmp.Diff([]bool{true, false, false}, b.Flip.PerColumnKeyFlip); diff != "" {
		t.Fatalf("key flip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, false, true}, b.Flip.PerColumnNoteFlip.HoldHead); diff != "" {
		t.Fatalf("hold head flip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, false, false}, b.Flip.PerColumnNoteFlip.HoldTail); diff != "" {
		t.Fatalf("hold tail flip mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyCount(t *testing.T) {
	cases := []struct {
		value string
		want  uint32
		ok    bool
	}{
		{"4", 4, true},
		{"128", 128, true},
		{"129", 0, false},
		{"200", 0, false},
		{"4294967295", 0, false},
		{"0", 0, false},
		{" 4", 0, false},
		{"4.0", 0, false},
	}
	for _, tc := range cases {
		got, ok := skin.KeyCount(resolve.Props{"Keys": tc.value})
		if got != tc.want || ok != tc.ok {
			t.Fatalf("KeyCount(%q) = %d,%v; want %d,%v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok := skin.KeyCount(resolve.Props{}); ok {
		t.Fatal("expected missing Keys to be unusable")
	}
}
