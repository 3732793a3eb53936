package disc

import (
	"math"
	"time"
)

type Variant struct {
	Name   string
	Period time.Duration
	// Thumbnails shows each track's artwork on the rim, kept upright while spinning
	Thumbnails bool
	// Inset is how far inside the rim the items sit
	Inset float64
}

var (
	// Compact marks each track with a dot on the rim
	Compact = Variant{
		Name:   "compact",
		Period: 15 * time.Second,
		Inset:  40,
	}

	Thumbnail = Variant{
		Name:       "thumbnail",
		Period:     20 * time.Second,
		Thumbnails: true,
		Inset:      40,
	}
)

func VariantNamed(name string) (Variant, bool) {
	for _, variant := range []Variant{Compact, Thumbnail} {
		if variant.Name == name {
			return variant, true
		}
	}

	return Variant{}, false
}

// Placement is where one track's item sits, relative to the disc's top left corner
type Placement struct {
	Index int
	// Angle is in degrees, clockwise from the positive x axis
	Angle float64
	X     float64
	Y     float64
}

// Place spreads count items evenly around a disc of the given radius
func (v Variant) Place(count int, radius float64) []Placement {
	if count <= 0 {
		return []Placement{}
	}

	increment := 360 / float64(count)
	distance := math.Max(radius-v.Inset, 0)

	placements := make([]Placement, count)
	for i := range placements {
		angle := increment * float64(i)
		radians := angle * math.Pi / 180

		placements[i] = Placement{
			Index: i,
			Angle: angle,
			X:     radius + math.Cos(radians)*distance,
			Y:     radius + math.Sin(radians)*distance,
		}
	}

	return placements
}

// turns added before taking the modulus, so multi turn negative drags stay positive
const normalizingTurns = 100000

// Normalize maps any accumulated rotation into [0, 360)
func Normalize(rotation float64) float64 {
	angle := math.Mod(rotation+360*normalizingTurns, 360)
	if angle < 0 {
		angle += 360
	}

	if angle >= 360 {
		return 0
	}

	return angle
}

// ProgressFor is the timeline progress matching a disc rotation
func ProgressFor(rotation float64) float64 {
	return Normalize(rotation) / 360
}
