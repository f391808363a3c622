package engine

import (
	"context"
	"errors"
	"log"
	"time"

	"peak/internal/storage"
)

// VitalsStore persists the vitals container.
type VitalsStore interface {
	LoadVitals(ctx context.Context) (*storage.Vitals, error)
	SaveVitals(ctx context.Context, v storage.Vitals) error
}

// VitalsState is a read-only snapshot of the day's counters and XP.
type VitalsState struct {
	Date                 string
	XP                   int
	WaterLiters          float64
	StudyHours           int
	SmokingIncidents     int
	EnergyDrinkIncidents int
}

func (s VitalsState) Level() int    { return LevelForXP(s.XP) }
func (s VitalsState) Progress() int { return ProgressInLevel(s.XP) }
func (s VitalsState) Rank() Rank    { return RankForXP(s.XP) }

// Incidents returns the counter for v.
func (s VitalsState) Incidents(v Vice) int {
	switch v {
	case ViceSmoking:
		return s.SmokingIncidents
	case ViceEnergyDrink:
		return s.EnergyDrinkIncidents
	default:
		return 0
	}
}

func (s VitalsState) record() storage.Vitals {
	return storage.Vitals{
		LastUpdateDate:       s.Date,
		ExperiencePoints:     s.XP,
		WaterLiters:          s.WaterLiters,
		StudyHours:           s.StudyHours,
		SmokingIncidents:     s.SmokingIncidents,
		EnergyDrinkIncidents: s.EnergyDrinkIncidents,
	}
}

// Rollover seeds the in-memory state from a stored record. A record from
// another day keeps only its XP; nil yields the zero state for today.
func Rollover(stored *storage.Vitals, today string) VitalsState {
	if stored == nil {
		return VitalsState{Date: today}
	}
	if stored.LastUpdateDate != today {
		return VitalsState{Date: today, XP: stored.ExperiencePoints}
	}
	return VitalsState{
		Date:                 today,
		XP:                   stored.ExperiencePoints,
		WaterLiters:          stored.WaterLiters,
		StudyHours:           stored.StudyHours,
		SmokingIncidents:     stored.SmokingIncidents,
		EnergyDrinkIncidents: stored.EnergyDrinkIncidents,
	}
}

// Vitals owns the day's counters and cumulative XP. Every mutation is
// persisted right away; persistence failures are logged and the in-memory
// state stays authoritative.
type Vitals struct {
	store  VitalsStore
	logger *log.Logger
	state  VitalsState
}

// LoadVitals reads the stored record and applies the daily rollover for now.
// Absent, unreadable and corrupt records all start from the zero state.
func LoadVitals(ctx context.Context, store VitalsStore, now time.Time, logger *log.Logger) *Vitals {
	if logger == nil {
		logger = discardLogger()
	}
	stored, err := store.LoadVitals(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptState) {
			logger.Printf("discarding vitals: %v", err)
		} else {
			logger.Printf("load vitals: %v", err)
		}
		stored = nil
	}
	today := DateKey(now)
	v := &Vitals{store: store, logger: logger, state: Rollover(stored, today)}
	if stored != nil && stored.LastUpdateDate != today {
		logger.Printf("rollover %s -> %s: counters reset, xp=%d kept", stored.LastUpdateDate, today, v.state.XP)
	}
	return v
}

func (v *Vitals) Snapshot() VitalsState { return v.state }

// LogAvoidance records one lapse of kind. No XP is awarded.
func (v *Vitals) LogAvoidance(ctx context.Context, kind Vice) VitalsState {
	switch kind {
	case ViceSmoking:
		v.state.SmokingIncidents++
	case ViceEnergyDrink:
		v.state.EnergyDrinkIncidents++
	default:
		return v.state
	}
	return v.persist(ctx)
}

// UndoAvoidance removes one lapse of kind, floored at zero.
func (v *Vitals) UndoAvoidance(ctx context.Context, kind Vice) VitalsState {
	switch kind {
	case ViceSmoking:
		v.state.SmokingIncidents = max(0, v.state.SmokingIncidents-1)
	case ViceEnergyDrink:
		v.state.EnergyDrinkIncidents = max(0, v.state.EnergyDrinkIncidents-1)
	default:
		return v.state
	}
	return v.persist(ctx)
}

// RecordResistance awards ResistanceXP for resisting kind. Counters are untouched.
func (v *Vitals) RecordResistance(ctx context.Context, kind Vice) VitalsState {
	if !kind.IsValid() {
		return v.state
	}
	v.state.XP += ResistanceXP
	return v.persist(ctx)
}

// AdjustHydration adds delta liters, floored at zero and rounded to one
// decimal. A positive delta awards HydrationXP.
func (v *Vitals) AdjustHydration(ctx context.Context, delta float64) VitalsState {
	v.state.WaterLiters = max(0, roundLiters(v.state.WaterLiters+delta))
	if delta > 0 {
		v.state.XP += HydrationXP
	}
	return v.persist(ctx)
}

// AdjustStudyHours adds delta hours, floored at zero. A positive delta
// awards StudyHourXP.
func (v *Vitals) AdjustStudyHours(ctx context.Context, delta int) VitalsState {
	v.state.StudyHours = max(0, v.state.StudyHours+delta)
	if delta > 0 {
		v.state.XP += StudyHourXP
	}
	return v.persist(ctx)
}

// LogFocusSession awards FocusSessionXP for a deep-work block without
// touching the study counter.
func (v *Vitals) LogFocusSession(ctx context.Context) VitalsState {
	v.state.XP += FocusSessionXP
	return v.persist(ctx)
}

// reset zeroes every counter and XP in memory, stamped with today.
// Clearing storage is left to the caller.
func (v *Vitals) reset(today string) {
	v.state = VitalsState{Date: today}
}

func (v *Vitals) persist(ctx context.Context) VitalsState {
	if err := v.store.SaveVitals(ctx, v.state.record()); err != nil {
		v.logger.Printf("persist vitals: %v", err)
	}
	return v.state
}
