package engine

import (
	"fmt"
	"strings"
)

// Tier is a discretized rank label for a single stat value.
type Tier string

// MaxStat is the hard cap on any single stat value.
const MaxStat = 333

// tierBands maps each tier to its lower bound and band width, ascending.
// The top band (>=333) has width 0 and always reports full progress.
var tierBands = []struct {
	min   int
	width int
	tier  Tier
}{
	{0, 10, "D-"}, {10, 11, "D"}, {21, 12, "D+"},
	{33, 13, "C-"}, {46, 14, "C"}, {60, 15, "C+"},
	{75, 16, "B-"}, {91, 17, "B"}, {108, 18, "B+"},
	{126, 19, "A-"}, {145, 20, "A"}, {165, 21, "A+"},
	{186, 22, "S-"}, {208, 23, "S"}, {231, 24, "S+"},
	{255, 25, "SS-"}, {280, 26, "SS"}, {306, 27, "SS+"},
	{333, 0, "SSS"},
}

// TierFor returns the tier for a stat value. The SSS rank is gated behind
// at least one Mega-difficulty completion: a capped stat without that
// unlock reports SS+ instead.
func TierFor(value int, megaUnlocked bool) Tier {
	if value >= MaxStat {
		if megaUnlocked {
			return "SSS"
		}
		return "SS+"
	}
	for i := len(tierBands) - 2; i >= 0; i-- {
		if value >= tierBands[i].min {
			return tierBands[i].tier
		}
	}
	return "D-"
}

// TierProgress returns the percentage [0,100] of the current tier band
// the value has covered. The top band always reports 100.
func TierProgress(value int) float64 {
	for i := len(tierBands) - 1; i >= 0; i-- {
		if value >= tierBands[i].min {
			if tierBands[i].width == 0 {
				return 100
			}
			p := float64(value-tierBands[i].min) / float64(tierBands[i].width) * 100
			if p < 0 {
				p = 0
			}
			if p > 100 {
				p = 100
			}
			return p
		}
	}
	return 0
}

// IsSS reports whether the tier is SS- or higher (the Mega gating check).
func (t Tier) IsSS() bool {
	return strings.Contains(string(t), "SS")
}

// RGB is a display color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Hex renders the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255))
}

var tierColors = map[Tier]RGB{
	"D-": {0.4, 0.4, 0.4}, "D": {0.47, 0.47, 0.47}, "D+": {0.53, 0.53, 0.53},
	"C-": {0.27, 0.67, 0.27}, "C": {0.33, 0.73, 0.33}, "C+": {0.4, 0.8, 0.4},
	"B-": {0.27, 0.27, 0.67}, "B": {0.33, 0.33, 0.73}, "B+": {0.4, 0.4, 0.8},
	"A-": {0.8, 0.8, 0.27}, "A": {0.87, 0.87, 0.33}, "A+": {0.93, 0.93, 0.4},
	"S-": {0.8, 0.53, 0.27}, "S": {0.87, 0.6, 0.33}, "S+": {0.93, 0.67, 0.4},
	"SS-": {0.8, 0.27, 0.27}, "SS": {0.87, 0.33, 0.33}, "SS+": {0.93, 0.4, 0.4},
	"SSS": {0.67, 0.13, 0.13},
}

// TierColor returns the display color for a tier, defaulting to gray.
func TierColor(t Tier) RGB {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return RGB{0.4, 0.4, 0.4}
}
