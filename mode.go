package vmath

import "github.com/chewxy/math32"

// AngleUnit selects how angle parameters and results are interpreted.
type AngleUnit uint8

const (
	DefaultUnit AngleUnit = iota // follow the process-wide unit set by UseDegrees/UseRadians
	Degrees                      // angles are in degrees
	Radians                      // angles are in radians
)

const (
	degToRad = math32.Pi / 180
	radToDeg = 180 / math32.Pi
)

// processUnit is the unit every DefaultUnit Mode resolves to. Degrees until
// UseRadians is called.
var processUnit = Degrees

// UseDegrees makes degrees the process-wide angle unit. This is the
// default.
func UseDegrees() {
	processUnit = Degrees
}

// UseRadians makes radians the process-wide angle unit for every
// operation that takes or reports an angle and was not given an explicit
// Mode.
func UseRadians() {
	processUnit = Radians
}

// Mode carries the angle unit into facades and static constructors. The
// zero Mode follows the process-wide unit, so package-level functions are
// Mode{} calls; tests and hosts that want a fixed unit use
// Mode{Unit: Radians} without touching process state.
type Mode struct {
	Unit AngleUnit
}

func (m Mode) unit() AngleUnit {
	if m.Unit == DefaultUnit {
		return processUnit
	}
	return m.Unit
}

// ToRadians converts an angle given in this mode's unit to radians.
func (m Mode) ToRadians(angle float32) float32 {
	if m.unit() == Radians {
		return angle
	}
	return angle * degToRad
}

// FromRadians converts an angle in radians to this mode's unit.
func (m Mode) FromRadians(rad float32) float32 {
	if m.unit() == Radians {
		return rad
	}
	return rad * radToDeg
}

// toRad converts through the process-wide unit; used by instance methods.
func toRad(angle float32) float32 {
	return Mode{}.ToRadians(angle)
}

func fromRad(rad float32) float32 {
	return Mode{}.FromRadians(rad)
}
