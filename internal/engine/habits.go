package engine

import (
	"strings"

	"peak/internal/storage"
)

// Habit names one trackable column of a daily log.
type Habit string

const (
	HabitGym       Habit = "gym"
	HabitStudy     Habit = "study"
	HabitNoSmoking Habit = "no-smoking"
	HabitHydrated  Habit = "hydrated"
	HabitDeepWork  Habit = "deep-work"
)

var Habits = []Habit{HabitGym, HabitStudy, HabitNoSmoking, HabitHydrated, HabitDeepWork}

func (h Habit) IsValid() bool {
	switch h {
	case HabitGym, HabitStudy, HabitNoSmoking, HabitHydrated, HabitDeepWork:
		return true
	default:
		return false
	}
}

// IsFlag reports whether the habit is a plain boolean that can be toggled.
func (h Habit) IsFlag() bool {
	return h.IsValid() && h != HabitStudy
}

func (h Habit) Label() string {
	switch h {
	case HabitGym:
		return "Gym Session"
	case HabitStudy:
		return "Uni Hours"
	case HabitNoSmoking:
		return "No Smoking"
	case HabitHydrated:
		return "Hydrated"
	case HabitDeepWork:
		return "Deep Work"
	default:
		return string(h)
	}
}

// Satisfied reports whether rec counts as done for h.
func (h Habit) Satisfied(rec storage.DailyLog) bool {
	switch h {
	case HabitGym:
		return rec.GymAttended
	case HabitStudy:
		return rec.StudyHours > 0
	case HabitNoSmoking:
		return rec.Habits.NoSmoking
	case HabitHydrated:
		return rec.Habits.Hydrated
	case HabitDeepWork:
		return rec.Habits.DeepWork
	default:
		return false
	}
}

func ParseHabit(input string) (Habit, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, "_", "-")
	switch s {
	case "gym":
		return HabitGym, nil
	case "study", "uni":
		return HabitStudy, nil
	case "no-smoking", "nosmoking", "smoke-free":
		return HabitNoSmoking, nil
	case "hydrated", "water":
		return HabitHydrated, nil
	case "deep-work", "deepwork", "focus":
		return HabitDeepWork, nil
	default:
		return "", ParseError{Kind: "habit", Input: input}
	}
}
