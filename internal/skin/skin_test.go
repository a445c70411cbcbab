package skin_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"skinini/internal/resolve"
	"skinini/internal/skin"
)

const sampleSkin = `[General]
Name: Aggro
Author: virtual
Version: 2.7
AnimationFramerate: 30
CursorExpand: 0
HitCircleOverlayAboveNumer: 0
CustomComboBurstSounds: 10, 30, x, 50

// colours
[Colours]
Combo1: 10,20,30
Combo5: 50,60,70
SliderTrackOverride: 1,2,3
MenuGlow: nonsense

[Fonts]
HitCirclePrefix: fonts\hitcircle
HitCircleOverlap: 3

[CatchTheBeat]
HyperDashFruit: 0,255,0

[Mania]
Keys: 4
ColumnWidth: 40,40,40,40
KeyImage0: mania\key0
Colour1: 0,0,0,255

[Mania]
Keys: 7
`

func TestResolveFullSkin(t *testing.T) {
	s := skin.Resolve(mustParse(t, sampleSkin))

	wantMeta := skin.Metadata{Name: "Aggro", Author: "virtual", Version: "2.7", AnimationFramerate: 30}
	if diff := cmp.Diff(wantMeta, s.General.Metadata); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	if s.General.Cursor.Expand || !s.General.Cursor.Centre {
		t.Fatalf("unexpected cursor flags: %+v", s.General.Cursor)
	}
	if s.General.Gameplay.HitCircleOverlayAboveNumber {
		t.Fatal("expected legacy overlay key to be honoured")
	}
	if diff := cmp.Diff([]uint32{10, 30, 50}, s.General.Gameplay.CustomComboBurstSounds); diff != "" {
		t.Fatalf("combo burst sounds mismatch (-want +got):\n%s", diff)
	}

	combo := s.Colours.Combo
	if combo.Combo1 != (resolve.RGB{R: 10, G: 20, B: 30}) || combo.Combo2 != (resolve.RGB{G: 202}) {
		t.Fatalf("unexpected combo colours: %+v", combo)
	}
	if combo.Combo5 == nil || *combo.Combo5 != (resolve.RGB{R: 50, G: 60, B: 70}) {
		t.Fatalf("Combo5 = %v", combo.Combo5)
	}
	if combo.Combo6 != nil {
		t.Fatalf("expected Combo6 unset, got %v", *combo.Combo6)
	}
	if got := len(combo.Active()); got != 5 {
		t.Fatalf("Active() returned %d colours, want 5", got)
	}
	if s.Colours.Interface.MenuGlow != (resolve.RGB{G: 78, B: 155}) {
		t.Fatalf("MenuGlow should fall back to default, got %v", s.Colours.Interface.MenuGlow)
	}
	if s.Colours.Gameplay.SliderTrackOverride == nil {
		t.Fatal("expected SliderTrackOverride set")
	}

	if s.Fonts.HitCircle != (skin.Font{Prefix: `fonts\hitcircle`, Overlap: 3}) {
		t.Fatalf("unexpected hit circle font: %+v", s.Fonts.HitCircle)
	}
	if s.Fonts.Score != (skin.Font{Prefix: "score"}) {
		t.Fatalf("unexpected score font: %+v", s.Fonts.Score)
	}

	if s.Catch.FruitColour() != (resolve.RGB{G: 255}) {
		t.Fatalf("FruitColour = %v", s.Catch.FruitColour())
	}
	if s.Catch.AfterImageColour() != (resolve.RGB{R: 255}) {
		t.Fatalf("AfterImageColour should fall back to HyperDash, got %v", s.Catch.AfterImageColour())
	}

	if len(s.Mania) != 2 {
		t.Fatalf("expected two mania configs, got %d", len(s.Mania))
	}
	if s.Mania[0].Images.Keys.Normal[0] != `mania\key0` {
		t.Fatalf("KeyImage0 = %q", s.Mania[0].Images.Keys.Normal[0])
	}
	if len(s.Mania[0].Colours.Columns) != 1 {
		t.Fatalf("expected one column colour, got %d", len(s.Mania[0].Colours.Columns))
	}
}

func TestResolveDefaultsWhenSectionsAbsent(t *testing.T) {
	s := skin.Resolve(mustParse(t, "[Mania]\nKeys: 4\n"))
	if s.General.Metadata.Name != "Unknown" || s.General.Metadata.Version != "latest" {
		t.Fatalf("unexpected metadata defaults: %+v", s.General.Metadata)
	}
	if s.General.Metadata.AnimationFramerate != -1 {
		t.Fatalf("AnimationFramerate = %d, want -1", s.General.Metadata.AnimationFramerate)
	}
	if !s.General.Gameplay.HitCircleOverlayAboveNumber || !s.General.Spinner.FrequencyModulate {
		t.Fatalf("unexpected gameplay defaults: %+v", s.General)
	}
	if s.Colours.Combo.Combo4 != (resolve.RGB{R: 242, G: 24, B: 57}) {
		t.Fatalf("Combo4 = %v", s.Colours.Combo.Combo4)
	}
	if s.Colours.Gameplay.SliderTrackOverride != nil || s.Catch.HyperDashFruit != nil {
		t.Fatal("expected optional colours to stay unset")
	}
	if s.Fonts.HitCircle != (skin.Font{Prefix: "default", Overlap: -2}) {
		t.Fatalf("unexpected hit circle font: %+v", s.Fonts.HitCircle)
	}
	if len(s.General.Gameplay.CustomComboBurstSounds) != 0 {
		t.Fatalf("expected no custom combo burst sounds, got %v", s.General.Gameplay.CustomComboBurstSounds)
	}
}

func TestResolveMergesRepeatedSingularSections(t *testing.T) {
	s := skin.Resolve(mustParse(t, "[General]\nName: one\nAuthor: me\n[General]\nName: two\n"))
	if s.General.Metadata.Name != "two" || s.General.Metadata.Author != "me" {
		t.Fatalf("unexpected merged metadata: %+v", s.General.Metadata)
	}
}

func TestCorrectOverlayKeyWinsOverLegacySpelling(t *testing.T) {
	g := skin.NewGeneral(resolve.Props{
		"HitCircleOverlayAboveNumber": "1",
		"HitCircleOverlayAboveNumer":  "0",
	})
	if !g.Gameplay.HitCircleOverlayAboveNumber {
		t.Fatal("expected correctly spelled key to take precedence")
	}
}

func TestResolveLogsSkippedManiaSections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	configs := skin.ResolveMania(mustParse(t, "[Mania]\nKeys: abc\n"), skin.WithLogger(logger))
	if len(configs) != 0 {
		t.Fatalf("expected no configs, got %d", len(configs))
	}
	out := buf.String()
	if !strings.Contains(out, "mania section skipped") || !strings.Contains(out, "keys=abc") {
		t.Fatalf("expected skip to be logged, got %q", out)
	}
	for _, want := range []string{"decision_type=mania_section", "decision_result=skipped", "decision_reason=\"keys must be an integer between 1 and 128\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in skip log, got %q", want, out)
		}
	}
	if !strings.Contains(out, "component=skin") {
		t.Fatalf("expected component attribute, got %q", out)
	}
}
