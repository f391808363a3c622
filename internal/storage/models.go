package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date key format used by both stores.
const DateLayout = "2006-01-02"

// Vitals is the persisted shape of the day's counters and cumulative XP.
type Vitals struct {
	LastUpdateDate       string  `json:"lastUpdateDate"`
	ExperiencePoints     int     `json:"experiencePoints"`
	WaterLiters          float64 `json:"waterLiters"`
	StudyHours           int     `json:"studyHours"`
	SmokingIncidents     int     `json:"smokingIncidents"`
	EnergyDrinkIncidents int     `json:"energyDrinkIncidents"`
}

// Validate reports whether v is a structurally valid vitals record.
func (v Vitals) Validate() error {
	if _, err := time.Parse(DateLayout, v.LastUpdateDate); err != nil {
		return fmt.Errorf("lastUpdateDate %q: %w", v.LastUpdateDate, err)
	}
	switch {
	case v.ExperiencePoints < 0:
		return fmt.Errorf("experiencePoints is negative: %d", v.ExperiencePoints)
	case v.WaterLiters < 0:
		return fmt.Errorf("waterLiters is negative: %v", v.WaterLiters)
	case v.StudyHours < 0:
		return fmt.Errorf("studyHours is negative: %d", v.StudyHours)
	case v.SmokingIncidents < 0:
		return fmt.Errorf("smokingIncidents is negative: %d", v.SmokingIncidents)
	case v.EnergyDrinkIncidents < 0:
		return fmt.Errorf("energyDrinkIncidents is negative: %d", v.EnergyDrinkIncidents)
	}
	return nil
}

type Habits struct {
	NoSmoking bool `json:"noSmoking"`
	Hydrated  bool `json:"hydrated"`
	DeepWork  bool `json:"deepWork"`
}

// DailyLog is one calendar day in the tracker.
type DailyLog struct {
	GymAttended bool    `json:"gymAttended"`
	StudyHours  float64 `json:"studyHours"`
	Habits      Habits  `json:"habits"`
}

// DailyLogs maps a DateLayout key to that day's record.
type DailyLogs map[string]DailyLog

// MaxLogStudyHours caps the per-day study hours in the tracker.
const MaxLogStudyHours = 12

func (l DailyLogs) Validate() error {
	for date, rec := range l {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return fmt.Errorf("date key %q: %w", date, err)
		}
		if rec.StudyHours < 0 || rec.StudyHours > MaxLogStudyHours {
			return fmt.Errorf("%s: studyHours out of range: %v", date, rec.StudyHours)
		}
	}
	return nil
}

// UniProgress records the done state of roadmap tasks the user has toggled,
// keyed by UniTaskKey. Tasks without an entry keep their built-in state.
type UniProgress map[string]bool

// UniTaskKey builds the UniProgress key for task of module.
func UniTaskKey(module string, task int) string {
	return module + "/" + strconv.Itoa(task)
}

func (p UniProgress) Validate() error {
	for key := range p {
		module, task, ok := strings.Cut(key, "/")
		if !ok || module == "" {
			return fmt.Errorf("task key %q: want <module>/<task>", key)
		}
		if n, err := strconv.Atoi(task); err != nil || n < 1 {
			return fmt.Errorf("task key %q: bad task number", key)
		}
	}
	return nil
}
