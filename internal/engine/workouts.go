package engine

import "time"

type WorkoutKind string

const (
	WorkoutPush WorkoutKind = "Push"
	WorkoutPull WorkoutKind = "Pull"
	WorkoutLegs WorkoutKind = "Legs"
	WorkoutRest WorkoutKind = "Rest"
)

type Exercise struct {
	Name string
	Sets string
	Reps string
	Note string
}

type WorkoutDef struct {
	Kind      WorkoutKind
	Name      string
	Focus     string
	Exercises []Exercise
}

func builtinWorkouts() map[WorkoutKind]WorkoutDef {
	return map[WorkoutKind]WorkoutDef{
		WorkoutPush: {
			Kind:  WorkoutPush,
			Name:  "Push Day",
			Focus: "Chest, Shoulders, Triceps",
			Exercises: []Exercise{
				{Name: "Barbell Bench Press", Sets: "4", Reps: "6-8", Note: "Heavy Compound"},
				{Name: "Overhead Press", Sets: "3", Reps: "8-12", Note: "Shoulder Stability"},
				{Name: "Incline DB Press", Sets: "3", Reps: "10-12", Note: "Upper Chest"},
				{Name: "Lateral Raises", Sets: "4", Reps: "15-20", Note: "Side Delts"},
				{Name: "Tricep Pushdowns", Sets: "3", Reps: "12-15", Note: "Isolation"},
			},
		},
		WorkoutPull: {
			Kind:  WorkoutPull,
			Name:  "Pull Day",
			Focus: "Back, Biceps, Rear Delts",
			Exercises: []Exercise{
				{Name: "Deadlifts", Sets: "3", Reps: "5-8", Note: "Full Body Power"},
				{Name: "Pull-Ups / Lat Pulldowns", Sets: "4", Reps: "8-12", Note: "Back Width"},
				{Name: "Seated Cable Rows", Sets: "3", Reps: "10-12", Note: "Back Thickness"},
				{Name: "Face Pulls", Sets: "3", Reps: "15-20", Note: "Posture/Rear Delts"},
				{Name: "Barbell Curls", Sets: "3", Reps: "10-12", Note: "Bicep Mass"},
			},
		},
		WorkoutLegs: {
			Kind:  WorkoutLegs,
			Name:  "Leg Day",
			Focus: "Quads, Hamstrings, Calves",
			Exercises: []Exercise{
				{Name: "Barbell Squats", Sets: "4", Reps: "6-10", Note: "King of Legs"},
				{Name: "Romanian Deadlifts", Sets: "3", Reps: "8-12", Note: "Hamstrings"},
				{Name: "Leg Press", Sets: "3", Reps: "12-15", Note: "Volume"},
				{Name: "Leg Extensions", Sets: "3", Reps: "15-20", Note: "Quad Isolation"},
				{Name: "Calf Raises", Sets: "4", Reps: "15-20", Note: "Don't skip these"},
			},
		},
		WorkoutRest: {
			Kind:  WorkoutRest,
			Name:  "Rest Day",
			Focus: "Recovery",
		},
	}
}

// WorkoutKindFor maps a weekday to the Push/Pull/Legs split.
func WorkoutKindFor(wd time.Weekday) WorkoutKind {
	switch wd {
	case time.Monday, time.Thursday:
		return WorkoutPush
	case time.Tuesday, time.Friday:
		return WorkoutPull
	case time.Wednesday, time.Saturday:
		return WorkoutLegs
	default:
		return WorkoutRest
	}
}

// WorkoutFor returns the planned session for day.
func WorkoutFor(day time.Time) WorkoutDef {
	return builtinWorkouts()[WorkoutKindFor(day.Weekday())]
}
