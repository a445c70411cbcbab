package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skinini/internal/logging"
	"skinini/internal/resolve"
	"skinini/internal/skin"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <skin.ini>",
		Short: "Resolve every known section of a skin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			doc, logger, err := ctx.loadSkin(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resolved := skin.Resolve(doc, skin.WithLogger(logger))
			logger.Info("skin resolved",
				logging.String("skin_name", resolved.General.Metadata.Name),
				logging.Int("mania_count", len(resolved.Mania)),
			)

			if outFormat != formatTable {
				return writeStructured(cmd, outFormat, resolved)
			}
			out := cmd.OutOrStdout()
			writeSkinSummary(out, resolved, ctx.colorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (table, json, yaml)")
	return cmd
}

func writeSkinSummary(out io.Writer, s *skin.Skin, colorize bool) {
	section := func(title string, lines ...string) {
		for _, line := range renderSectionHeader(title, colorize) {
			fmt.Fprintln(out, line)
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}

	meta := s.General.Metadata
	version := statusOK
	if meta.Version != "latest" {
		version = statusInfo
	}
	section("General",
		renderField("Name", meta.Name),
		renderField("Author", orDash(meta.Author)),
		renderStatusLine("Version", version, meta.Version, colorize),
		renderField("Cursor Centre", yesNo(s.General.Cursor.Centre)),
		renderField("Cursor Expand", yesNo(s.General.Cursor.Expand)),
		renderField("Overlay Above Number", yesNo(s.General.Gameplay.HitCircleOverlayAboveNumber)),
	)

	combos := s.Colours.Combo.Active()
	comboText := make([]string, len(combos))
	for i, c := range combos {
		comboText[i] = c.String()
	}
	section("Colours",
		renderField("Combo", strings.Join(comboText, " | ")),
		renderField("Slider Border", s.Colours.Gameplay.SliderBorder.String()),
		renderField("Slider Track", optionalRGB(s.Colours.Gameplay.SliderTrackOverride)),
		renderField("Menu Glow", s.Colours.Interface.MenuGlow.String()),
	)

	font := func(f skin.Font) string {
		return fmt.Sprintf("%s (overlap %d)", f.Prefix, f.Overlap)
	}
	section("Fonts",
		renderField("Hit Circle", font(s.Fonts.HitCircle)),
		renderField("Score", font(s.Fonts.Score)),
		renderField("Combo", font(s.Fonts.Combo)),
	)

	section("CatchTheBeat",
		renderField("Hyper Dash", s.Catch.HyperDash.String()),
		renderField("Fruit", colourSource(s.Catch.HyperDashFruit, s.Catch.FruitColour())),
		renderField("After Image", colourSource(s.Catch.HyperDashAfterImage, s.Catch.AfterImageColour())),
	)

	if len(s.Mania) == 0 {
		section("Mania", renderStatusLine("Configs", statusWarn, "none with a usable key count", colorize))
		return
	}
	section("Mania",
		renderStatusLine("Configs", statusOK, strconv.Itoa(len(s.Mania)), colorize),
		renderManiaSummary(s.Mania),
	)
}

// colourSource shows an effective colour, marking it when inherited.
func colourSource(set *resolve.RGB, effective resolve.RGB) string {
	if set != nil {
		return set.String()
	}
	return effective.String() + " (from HyperDash)"
}
