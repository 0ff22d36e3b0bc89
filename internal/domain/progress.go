// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import "strconv"

// DaysPerLevel is the length of a regular level in the 100-day program.
const DaysPerLevel = 12

// TotalJourneyDays is the length of the full program.
const TotalJourneyDays = 100

// LevelCount is the number of levels in the program. Levels 1..8 are 12 days
// each; level 9 covers days 97-100 only.
const LevelCount = 9

// finalLevelCompleteDay is the day that completes level 9. The generic rule
// (level*12) would require day 108, which exceeds the 100-day program, so the
// final level is closed out at day 97. This asymmetry is intentional and must
// not be "fixed" back to the formula.
const finalLevelCompleteDay = 97

// LevelInfo holds the derived level values for a single day number.
type LevelInfo struct {
	Level                int `json:"level"`
	DayInLevel           int `json:"dayInLevel"`
	LevelProgressPercent int `json:"levelProgressPercent"`
}

// LevelForDay returns the level a day belongs to.
//
// Formula: ceil(day / 12)
//
// Days 1-12 are level 1, days 13-24 level 2 and so on; days 97-100 land on
// level 9. The input is not validated against [1,100]: day 0 or a negative day
// yields a degenerate level (0 or below) and callers rendering badges are
// expected to treat "no videos yet" as no progress instead. Days beyond 100
// compute levels beyond 9 without error; keeping day in range is the server's
// responsibility.
func LevelForDay(day int) int {
	if day <= 0 {
		return (day / DaysPerLevel)
	}
	return (day + DaysPerLevel - 1) / DaysPerLevel
}

// LevelInfoForDay derives the level, the 1-based position within the level and
// the level completion percentage for a day number. Deterministic and free of
// side effects.
func LevelInfoForDay(day int) LevelInfo {
	dayInLevel := ((day-1)%DaysPerLevel + DaysPerLevel) % DaysPerLevel
	dayInLevel++

	return LevelInfo{
		Level:                LevelForDay(day),
		DayInLevel:           dayInLevel,
		LevelProgressPercent: roundPercent(dayInLevel, DaysPerLevel),
	}
}

// OverallProgress returns the rounded percentage of the journey completed
// after the given day, measured against totalDays. Pass TotalJourneyDays for
// the standard 100-day program.
func OverallProgress(day, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	if day <= 0 {
		return 0
	}
	return roundPercent(day, totalDays)
}

// Milestone describes one entry of the 9-level strip on the landing page.
type Milestone struct {
	Level     int    `json:"level"`
	Days      string `json:"days"`
	Completed bool   `json:"completed"`
}

// LevelCompleted reports whether a level is fully behind the journey given the
// highest day reached across all videos. Levels 1..8 complete at level*12;
// level 9 completes at day 97 (see finalLevelCompleteDay).
func LevelCompleted(level, maxDay int) bool {
	if level == LevelCount {
		return maxDay >= finalLevelCompleteDay
	}
	return maxDay >= level*DaysPerLevel
}

// Milestones builds the full 9-level strip for the given max day.
func Milestones(maxDay int) []Milestone {
	strip := make([]Milestone, 0, LevelCount)
	for level := 1; level <= LevelCount; level++ {
		first := (level-1)*DaysPerLevel + 1
		last := level * DaysPerLevel
		if level == LevelCount {
			last = TotalJourneyDays
		}

		strip = append(strip, Milestone{
			Level:     level,
			Days:      dayRange(first, last),
			Completed: LevelCompleted(level, maxDay),
		})
	}

	return strip
}

// roundPercent computes round(part/whole * 100) using integer math to avoid
// float rounding surprises at the .5 boundary.
func roundPercent(part, whole int) int {
	return (part*100*2 + whole) / (whole * 2)
}

func dayRange(first, last int) string {
	return strconv.Itoa(first) + "-" + strconv.Itoa(last)
}
