package gear

import (
	"fmt"
	"math"
)

// Dimensions holds the secondary gear dimensions derived from the primary
// parameters. It is computed once when a Gear is constructed and read-only
// afterwards; every downstream stage consumes the same values.
type Dimensions struct {
	// PitchDiameter is the diameter of the pitch circle, teeth/pitch.
	PitchDiameter float64

	// BaseRadius is the radius of the base circle the involute unrolls
	// from: pitchRadius * cos(pressureAngle).
	BaseRadius float64

	// OuterRadius is the addendum circle radius bounding the tooth tips.
	OuterRadius float64

	// RootRadius is the dedendum circle radius at the bottom of the
	// tooth spaces.
	RootRadius float64

	// ToothThickness is the circular tooth thickness measured along the
	// pitch circle.
	ToothThickness float64

	// AngularPitch is the angle spanned by one tooth period, 2*pi/teeth.
	AngularPitch float64
}

// PitchRadius returns half the pitch diameter.
func (d Dimensions) PitchRadius() float64 {
	return d.PitchDiameter / 2
}

// resolveDimensions validates the primary parameters and derives the
// standard full-depth involute dimensions. Pure function of its inputs.
func resolveDimensions(pitch float64, teeth int, pressureAngleDeg, addendumFactor, dedendumFactor float64) (Dimensions, error) {
	if pitch <= 0 || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		return Dimensions{}, fmt.Errorf("%w: pitch must be positive, got %v", ErrInvalidParameter, pitch)
	}
	if teeth < 3 {
		return Dimensions{}, fmt.Errorf("%w: tooth count must be at least 3, got %d", ErrInvalidParameter, teeth)
	}
	if pressureAngleDeg <= 0 || pressureAngleDeg >= 90 || math.IsNaN(pressureAngleDeg) {
		return Dimensions{}, fmt.Errorf("%w: pressure angle must be in (0, 90) degrees, got %v", ErrInvalidParameter, pressureAngleDeg)
	}
	if addendumFactor <= 0 {
		return Dimensions{}, fmt.Errorf("%w: addendum factor must be positive, got %v", ErrInvalidParameter, addendumFactor)
	}
	if dedendumFactor <= 0 {
		return Dimensions{}, fmt.Errorf("%w: dedendum factor must be positive, got %v", ErrInvalidParameter, dedendumFactor)
	}

	pitchDiameter := float64(teeth) / pitch
	pitchRadius := pitchDiameter / 2
	pressureAngle := pressureAngleDeg * math.Pi / 180

	d := Dimensions{
		PitchDiameter:  pitchDiameter,
		BaseRadius:     pitchRadius * math.Cos(pressureAngle),
		OuterRadius:    pitchRadius + addendumFactor/pitch,
		RootRadius:     pitchRadius - dedendumFactor/pitch,
		ToothThickness: math.Pi / (2 * pitch),
		AngularPitch:   2 * math.Pi / float64(teeth),
	}
	if d.RootRadius <= 0 {
		return Dimensions{}, fmt.Errorf("%w: derived root radius %v is not positive (dedendum too large for %d teeth)",
			ErrInvalidParameter, d.RootRadius, teeth)
	}
	return d, nil
}
