package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tonearm/internal/geometry"
	"tonearm/internal/scheme"
)

func newTableWriter(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)

	// First column is a label; every value column is numeric.
	configs := make([]table.ColumnConfig, 0, len(header))
	for i := range header {
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

func geometryTable(values geometry.Result) string {
	tw := newTableWriter(table.Row{"Quantity", "Value"})
	tw.AppendRows([]table.Row{
		{"Pivot-to-spindle", fmt.Sprintf("%.2f mm", values.PivotToSpindle)},
		{"Null points", fmt.Sprintf("%.2f mm / %.2f mm", values.InnerNull, values.OuterNull)},
		{"Effective length", fmt.Sprintf("%.2f mm", values.EffectiveLength)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Offset angle", fmt.Sprintf("%.3f deg", values.OffsetAngleDeg)},
		{"Overhang", fmt.Sprintf("%.3f mm", values.Overhang)},
		{"Linear offset", fmt.Sprintf("%.3f mm", values.LinearOffset)},
	})
	return tw.Render()
}

func schemeTable(schemes []scheme.Scheme) string {
	tw := newTableWriter(table.Row{"Scheme", "Inner null", "Outer null"})
	for _, s := range schemes {
		tw.AppendRow(table.Row{
			s.Name,
			scheme.FormatMillimetres(s.InnerNull) + " mm",
			scheme.FormatMillimetres(s.OuterNull) + " mm",
		})
	}
	return tw.Render()
}
