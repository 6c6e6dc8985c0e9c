package main

import (
	"fmt"
	"io"
	"strings"

	"tonearm/internal/config"
	"tonearm/internal/geometry"
	"tonearm/internal/scheme"
)

func formatGeometry(values geometry.Result) string {
	lines := []string{
		fmt.Sprintf("Pivot-to-spindle:  %.2f mm", values.PivotToSpindle),
		fmt.Sprintf("Null points:       %.2f mm / %.2f mm", values.InnerNull, values.OuterNull),
		fmt.Sprintf("Effective length:  %.2f mm", values.EffectiveLength),
		fmt.Sprintf("Offset angle:      %.3f deg", values.OffsetAngleDeg),
		fmt.Sprintf("Overhang:          %.3f mm", values.Overhang),
		fmt.Sprintf("Linear offset:     %.3f mm", values.LinearOffset),
	}
	return strings.Join(lines, "\n")
}

func renderGeometry(w io.Writer, format string, values geometry.Result) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, values)
	case config.OutputTable:
		_, err := fmt.Fprintln(w, geometryTable(values))
		return err
	default:
		_, err := fmt.Fprintln(w, formatGeometry(values))
		return err
	}
}

func renderSchemes(w io.Writer, format string, schemes []scheme.Scheme) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, schemes)
	case config.OutputTable:
		_, err := fmt.Fprintln(w, schemeTable(schemes))
		return err
	default:
		for _, s := range schemes {
			if _, err := fmt.Fprintln(w, s.String()); err != nil {
				return err
			}
		}
		return nil
	}
}
