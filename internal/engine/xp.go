package engine

import "math"

const (
	// XPPerLevel is the flat XP span of every level.
	XPPerLevel = 100

	ResistanceXP   = 15
	HydrationXP    = 5
	StudyHourXP    = 20
	FocusSessionXP = 20

	// HydrationStep and StudyStep are the increments the surfaces use.
	HydrationStep = 0.5
	StudyStep     = 1

	// XPPerOrganism sets how fast the reef population grows.
	XPPerOrganism = 50
)

// LevelForXP returns floor(xp/100)+1. Negative XP counts as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// ProgressInLevel returns the XP earned inside the current level, in [0, 100).
func ProgressInLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}

// XPRequiredForLevel returns the total XP threshold of the given level.
// Level 1 requires 0 XP.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// roundLiters rounds to one decimal place so repeated 0.5 steps never drift.
func roundLiters(v float64) float64 {
	return math.Round(v*10) / 10
}
