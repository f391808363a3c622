package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"peak/internal/storage"
)

// LogStore persists the calendar log container.
type LogStore interface {
	LoadDailyLogs(ctx context.Context) (storage.DailyLogs, error)
	SaveDailyLogs(ctx context.Context, logs storage.DailyLogs) error
}

// DateKey formats t as a calendar-date key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(storage.DateLayout)
}

// ParseDate parses a YYYY-MM-DD key in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(storage.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// LogPatch is a partial update of a daily log. Nil fields are left alone.
type LogPatch struct {
	GymAttended *bool
	StudyHours  *float64
	NoSmoking   *bool
	Hydrated    *bool
	DeepWork    *bool
}

func (p LogPatch) apply(rec storage.DailyLog) storage.DailyLog {
	if p.GymAttended != nil {
		rec.GymAttended = *p.GymAttended
	}
	if p.StudyHours != nil {
		rec.StudyHours = clampLogStudyHours(*p.StudyHours)
	}
	if p.NoSmoking != nil {
		rec.Habits.NoSmoking = *p.NoSmoking
	}
	if p.Hydrated != nil {
		rec.Habits.Hydrated = *p.Hydrated
	}
	if p.DeepWork != nil {
		rec.Habits.DeepWork = *p.DeepWork
	}
	return rec
}

// clampLogStudyHours keeps hours within [0, 12] on the 0.5 grid.
func clampLogStudyHours(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	if h > storage.MaxLogStudyHours {
		return storage.MaxLogStudyHours
	}
	return math.Round(h*2) / 2
}

// Calendar owns the per-date habit records.
type Calendar struct {
	store  LogStore
	logger *log.Logger
	logs   storage.DailyLogs
}

// LoadCalendar reads the stored map. Unreadable or corrupt data starts empty.
func LoadCalendar(ctx context.Context, store LogStore, logger *log.Logger) *Calendar {
	if logger == nil {
		logger = discardLogger()
	}
	logs, err := store.LoadDailyLogs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCorruptState) {
			logger.Printf("discarding daily logs: %v", err)
		} else {
			logger.Printf("load daily logs: %v", err)
		}
		logs = nil
	}
	if logs == nil {
		logs = storage.DailyLogs{}
	}
	return &Calendar{store: store, logger: logger, logs: logs}
}

// Record returns the log for day, or the zero record. It never writes.
func (c *Calendar) Record(day time.Time) storage.DailyLog {
	return c.logs[DateKey(day)]
}

func (c *Calendar) HasRecord(day time.Time) bool {
	_, ok := c.logs[DateKey(day)]
	return ok
}

// Len returns the number of dates with a record.
func (c *Calendar) Len() int { return len(c.logs) }

// SetField merges patch into the record for day, creating it if needed,
// and persists the whole map.
func (c *Calendar) SetField(ctx context.Context, day time.Time, patch LogPatch) storage.DailyLog {
	key := DateKey(day)
	rec := patch.apply(c.logs[key])
	c.logs[key] = rec
	c.persist(ctx)
	return rec
}

// Toggle flips a boolean habit for day.
func (c *Calendar) Toggle(ctx context.Context, day time.Time, h Habit) (storage.DailyLog, error) {
	if !h.IsFlag() {
		return storage.DailyLog{}, fmt.Errorf("habit %q cannot be toggled", h)
	}
	next := !h.Satisfied(c.Record(day))
	var p LogPatch
	switch h {
	case HabitGym:
		p.GymAttended = &next
	case HabitNoSmoking:
		p.NoSmoking = &next
	case HabitHydrated:
		p.Hydrated = &next
	case HabitDeepWork:
		p.DeepWork = &next
	}
	return c.SetField(ctx, day, p), nil
}

// reset drops every record in memory. Clearing storage is left to the caller.
func (c *Calendar) reset() {
	c.logs = storage.DailyLogs{}
}

func (c *Calendar) persist(ctx context.Context) {
	if err := c.store.SaveDailyLogs(ctx, c.logs); err != nil {
		c.logger.Printf("persist daily logs: %v", err)
	}
}

// DayCell is one day of a month grid.
type DayCell struct {
	Day       int
	Date      string
	HasRecord bool
	Gym       bool
	Study     bool
}

// MonthGrid is what a Monday-first calendar needs to render one month.
type MonthGrid struct {
	Year  int
	Month time.Month
	// FirstWeekdayIndex is the number of leading blanks (Monday=0 … Sunday=6).
	FirstWeekdayIndex int
	DaysInMonth       int
	Days              []DayCell
}

// MondayIndex converts a Sunday-first weekday to Monday-first ordering.
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Month builds the grid for month of year in the local time zone.
func (c *Calendar) Month(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	g := MonthGrid{
		Year:              first.Year(),
		Month:             first.Month(),
		FirstWeekdayIndex: MondayIndex(first.Weekday()),
		DaysInMonth:       DaysIn(first.Year(), first.Month()),
	}
	g.Days = make([]DayCell, 0, g.DaysInMonth)
	for d := 1; d <= g.DaysInMonth; d++ {
		key := DateKey(time.Date(g.Year, g.Month, d, 0, 0, 0, 0, time.Local))
		rec, ok := c.logs[key]
		cell := DayCell{Day: d, Date: key, HasRecord: ok}
		if ok {
			cell.Gym = rec.GymAttended
			cell.Study = rec.StudyHours > 0
		}
		g.Days = append(g.Days, cell)
	}
	return g
}

// Summary aggregates the logs of an inclusive date range.
type Summary struct {
	From, To      string
	Days          int
	DaysLogged    int
	GymDays       int
	StudyHours    float64
	NoSmokingDays int
	HydratedDays  int
	DeepWorkDays  int
}

// Summary walks from..to one calendar day at a time. from after to yields an empty range.
func (c *Calendar) Summary(from, to time.Time) Summary {
	s := Summary{From: DateKey(from), To: DateKey(to)}
	start := dayStart(from)
	end := dayStart(to)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		s.Days++
		rec, ok := c.logs[DateKey(d)]
		if !ok {
			continue
		}
		s.DaysLogged++
		if rec.GymAttended {
			s.GymDays++
		}
		s.StudyHours += rec.StudyHours
		if rec.Habits.NoSmoking {
			s.NoSmokingDays++
		}
		if rec.Habits.Hydrated {
			s.HydratedDays++
		}
		if rec.Habits.DeepWork {
			s.DeepWorkDays++
		}
	}
	return s
}

// Streak counts consecutive days ending at today on which h is satisfied.
// An unsatisfied today does not break a streak that ran through yesterday.
func (c *Calendar) Streak(today time.Time, h Habit) int {
	d := dayStart(today)
	if !h.Satisfied(c.Record(d)) {
		d = d.AddDate(0, 0, -1)
	}
	n := 0
	for h.Satisfied(c.Record(d)) {
		n++
		d = d.AddDate(0, 0, -1)
	}
	return n
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
