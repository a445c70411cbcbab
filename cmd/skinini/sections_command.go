package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"skinini/internal/skinfile"
)

type sectionView struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Keys  int    `json:"keys" yaml:"keys"`
}

func newSectionsCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sections <skin.ini>",
		Short: "List the raw sections of a skin file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ctx.outputFormat(format)
			if err != nil {
				return err
			}
			doc, _, err := ctx.loadSkin(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			views := sectionViews(doc)
			if outFormat != formatTable {
				return writeStructured(cmd, outFormat, views)
			}
			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "No sections found")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{strconv.Itoa(v.Index), sectionLabel(v.Name), strconv.Itoa(v.Keys)})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Section", "Keys"}, rows, []columnAlignment{alignRight, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (table, json, yaml)")
	return cmd
}

func sectionViews(doc *skinfile.Document) []sectionView {
	sections := doc.Sections()
	views := make([]sectionView, 0, len(sections))
	for i, s := range sections {
		views = append(views, sectionView{Index: i, Name: s.Name(), Keys: s.Len()})
	}
	return views
}

func sectionLabel(name string) string {
	if name == skinfile.DefaultSection {
		return "(no header)"
	}
	return "[" + name + "]"
}
