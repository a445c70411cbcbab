package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skinini/internal/logging"
	"skinini/internal/skin"
)

func newManiaCommand(ctx *commandContext) *cobra.Command {
	var keys uint32
	var format string

	cmd := &cobra.Command{
		Use:   "mania <skin.ini>",
		Short: "Resolve the [Mania] sections of a skin",
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

			configs := skin.ResolveMania(doc, skin.WithLogger(logger))
			if cmd.Flags().Changed("keys") {
				configs = filterKeyCount(configs, keys)
				if len(configs) == 0 {
					return fmt.Errorf("no [Mania] section with Keys: %d in %s", keys, args[0])
				}
			}
			logger.Info("mania sections resolved",
				logging.Int("mania_count", len(configs)),
				logging.String("key_counts", keyCountSummary(configs)),
			)

			if outFormat != formatTable {
				return writeStructured(cmd, outFormat, configs)
			}
			out := cmd.OutOrStdout()
			if len(configs) == 0 {
				fmt.Fprintln(out, "No [Mania] sections with a usable key count")
				return nil
			}
			fmt.Fprintln(out, renderManiaSummary(configs))
			if cmd.Flags().Changed("keys") {
				for _, cfg := range configs {
					fmt.Fprintln(out)
					fmt.Fprintln(out, renderManiaColumns(cfg))
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&keys, "keys", 0, "Only show sections with this key count (adds a per-column table)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (table, json, yaml)")
	return cmd
}

func filterKeyCount(configs []skin.Mania, keys uint32) []skin.Mania {
	out := make([]skin.Mania, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Keys.Count == keys {
			out = append(out, cfg)
		}
	}
	return out
}

func keyCountSummary(configs []skin.Mania) string {
	counts := make([]uint32, len(configs))
	for i, cfg := range configs {
		counts[i] = cfg.Keys.Count
	}
	return joinUints(counts)
}

func renderManiaSummary(configs []skin.Mania) string {
	headers := []string{"#", "Keys", "Column Start", "Hit Position", "Special Style", "Upside Down", "Barline", "Columns Coloured"}
	rows := make([][]string, 0, len(configs))
	for i, cfg := range configs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatUint(uint64(cfg.Keys.Count), 10),
			strconv.FormatUint(uint64(cfg.ColumnLayout.ColumnStart), 10),
			strconv.FormatUint(uint64(cfg.Positions.Hit), 10),
			strconv.Itoa(int(cfg.SpecialStyle.Style)),
			yesNo(cfg.Behavior.UpsideDown),
			cfg.Colours.Barline.String(),
			fmt.Sprintf("%d/%d", len(cfg.Colours.Columns), cfg.Keys.Count),
		})
	}
	aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft, alignRight}
	return renderTable(headers, rows, aligns)
}

func renderManiaColumns(cfg skin.Mania) string {
	headers := []string{"Column", "Width", "Key Image", "Note Image", "Body Style", "Key Flip"}
	uintText := func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }
	text := func(s string) string { return orDash(s) }
	styleText := func(v uint8) string { return strconv.Itoa(int(v)) }

	rows := make([][]string, 0, cfg.Keys.Count)
	for i := range int(cfg.Keys.Count) {
		rows = append(rows, []string{
			strconv.Itoa(i),
			indexOr(cfg.ColumnLayout.ColumnWidth, i, uintText),
			indexOr(cfg.Images.Keys.Normal, i, text),
			indexOr(cfg.Images.Notes.Regular, i, text),
			indexOr(cfg.Behavior.NoteBodyStyle.PerColumn, i, styleText),
			indexOr(cfg.Behavior.Flip.PerColumnKeyFlip, i, yesNo),
		})
	}
	title := fmt.Sprintf("%dK columns", cfg.Keys.Count)
	aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft}
	return title + "\n" + strings.TrimRight(renderTable(headers, rows, aligns), "\n")
}
