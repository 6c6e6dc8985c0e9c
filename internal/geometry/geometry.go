package geometry

import (
	"math"

	"tonearm/internal/apperr"
)

const radToDeg = 180 / math.Pi

// Input is a pivot-to-spindle distance plus the two null-point radii, all in
// millimetres.
type Input struct {
	PivotToSpindle float64 `json:"pivot_to_spindle_mm"`
	InnerNull      float64 `json:"inner_null_mm"`
	OuterNull      float64 `json:"outer_null_mm"`
}

// Compute is shorthand for the package-level Compute.
func (in Input) Compute() (Result, error) {
	return Compute(in.PivotToSpindle, in.InnerNull, in.OuterNull)
}

// Result holds the derived arm geometry. OffsetAngleDeg is in degrees; every
// other field is in millimetres.
type Result struct {
	PivotToSpindle  float64 `json:"pivot_to_spindle_mm"`
	InnerNull       float64 `json:"inner_null_mm"`
	OuterNull       float64 `json:"outer_null_mm"`
	EffectiveLength float64 `json:"effective_length_mm"`
	LinearOffset    float64 `json:"linear_offset_mm"`
	OffsetAngleDeg  float64 `json:"offset_angle_deg"`
	Overhang        float64 `json:"overhang_mm"`
}

// Compute validates the inputs and solves the two-null condition:
//
//	linearOffset    = (r1 + r2) / 2
//	effectiveLength = sqrt(S^2 + r1*r2)
//	offsetAngle     = asin(linearOffset / effectiveLength)
//	overhang        = effectiveLength - S
//
// A linear offset equal to the effective length is accepted (90 degrees).
func Compute(pivotToSpindle, innerNull, outerNull float64) (Result, error) {
	// Negated comparisons so NaN is rejected too.
	if !(pivotToSpindle > 0) {
		return Result{}, apperr.New(apperr.ErrInvalidGeometry, "Pivot-to-spindle distance must be positive.")
	}
	if !(innerNull > 0) || !(outerNull > 0) {
		return Result{}, apperr.New(apperr.ErrInvalidGeometry, "Null points must be positive.")
	}
	if innerNull >= outerNull {
		return Result{}, apperr.New(apperr.ErrInvalidGeometry, "Inner null must be smaller than outer null.")
	}

	rProduct := innerNull * outerNull
	effectiveLength := math.Sqrt(pivotToSpindle*pivotToSpindle + rProduct)

	linearOffset := 0.5 * (innerNull + outerNull)
	if linearOffset > effectiveLength {
		return Result{}, apperr.New(apperr.ErrInvalidGeometry, "Geometry impossible: linear offset exceeds effective length.")
	}

	return Result{
		PivotToSpindle:  pivotToSpindle,
		InnerNull:       innerNull,
		OuterNull:       outerNull,
		EffectiveLength: effectiveLength,
		LinearOffset:    linearOffset,
		OffsetAngleDeg:  math.Asin(linearOffset/effectiveLength) * radToDeg,
		Overhang:        effectiveLength - pivotToSpindle,
	}, nil
}
