package engine

import (
	"context"
	"testing"
	"time"

	"peak/internal/storage"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestSetFieldMergeNonDestructive(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)
	d := day(2025, time.February, 10)

	c.SetField(ctx, d, LogPatch{NoSmoking: boolPtr(true), DeepWork: boolPtr(true)})
	c.SetField(ctx, d, LogPatch{StudyHours: floatPtr(3.5)})
	rec := c.SetField(ctx, d, LogPatch{GymAttended: boolPtr(true)})

	want := storage.DailyLog{
		GymAttended: true,
		StudyHours:  3.5,
		Habits:      storage.Habits{NoSmoking: true, DeepWork: true},
	}
	if rec != want {
		t.Fatalf("record=%+v, want %+v", rec, want)
	}

	reloaded := LoadCalendar(ctx, repo, nil)
	if got := reloaded.Record(d); got != want {
		t.Fatalf("reloaded=%+v, want %+v", got, want)
	}
}

func TestRecordReadsDefaultsWithoutWriting(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)

	if got := c.Record(day(2025, time.April, 1)); got != (storage.DailyLog{}) {
		t.Fatalf("Record=%+v, want zero", got)
	}
	if c.HasRecord(day(2025, time.April, 1)) || c.Len() != 0 {
		t.Fatalf("Record created an entry")
	}
	keys, err := repo.KV().Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("Record wrote to storage: %v", keys)
	}
}

func TestStudyHoursClampedInLog(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)
	d := day(2025, time.April, 2)

	tests := []struct {
		in, want float64
	}{
		{-2, 0},
		{0.5, 0.5},
		{7.3, 7.5},
		{12, 12},
		{15, 12},
	}
	for _, tt := range tests {
		rec := c.SetField(ctx, d, LogPatch{StudyHours: floatPtr(tt.in)})
		if rec.StudyHours != tt.want {
			t.Fatalf("StudyHours(%v)=%v, want %v", tt.in, rec.StudyHours, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)
	d := day(2025, time.April, 3)

	rec, err := c.Toggle(ctx, d, HabitHydrated)
	if err != nil || !rec.Habits.Hydrated {
		t.Fatalf("toggle on: %+v, %v", rec, err)
	}
	rec, err = c.Toggle(ctx, d, HabitHydrated)
	if err != nil || rec.Habits.Hydrated {
		t.Fatalf("toggle off: %+v, %v", rec, err)
	}
	if _, err := c.Toggle(ctx, d, HabitStudy); err == nil {
		t.Fatalf("expected error toggling study hours")
	}
}

func TestMonthGrid(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)

	c.SetField(ctx, day(2025, time.January, 6), LogPatch{GymAttended: boolPtr(true)})
	c.SetField(ctx, day(2025, time.January, 7), LogPatch{StudyHours: floatPtr(2)})
	c.SetField(ctx, day(2025, time.January, 8), LogPatch{Hydrated: boolPtr(true)})

	g := c.Month(2025, time.January)
	if g.FirstWeekdayIndex != 2 {
		t.Fatalf("FirstWeekdayIndex=%d, want 2 (Wednesday)", g.FirstWeekdayIndex)
	}
	if g.DaysInMonth != 31 || len(g.Days) != 31 {
		t.Fatalf("days=%d/%d, want 31", g.DaysInMonth, len(g.Days))
	}
	if cell := g.Days[5]; !cell.HasRecord || !cell.Gym || cell.Study {
		t.Fatalf("Jan 6 cell=%+v", cell)
	}
	if cell := g.Days[6]; !cell.HasRecord || cell.Gym || !cell.Study {
		t.Fatalf("Jan 7 cell=%+v", cell)
	}
	if cell := g.Days[7]; !cell.HasRecord || cell.Gym || cell.Study {
		t.Fatalf("Jan 8 cell=%+v", cell)
	}
	if cell := g.Days[0]; cell.HasRecord || cell.Date != "2025-01-01" {
		t.Fatalf("Jan 1 cell=%+v", cell)
	}

	offsets := []struct {
		year  int
		month time.Month
		want  int
		days  int
	}{
		{2025, time.September, 0, 30}, // Monday
		{2025, time.June, 6, 30},      // Sunday
		{2024, time.February, 3, 29},  // Thursday, leap year
	}
	for _, tt := range offsets {
		g := c.Month(tt.year, tt.month)
		if g.FirstWeekdayIndex != tt.want || g.DaysInMonth != tt.days {
			t.Fatalf("%d-%02d offset=%d days=%d, want %d/%d", tt.year, tt.month, g.FirstWeekdayIndex, g.DaysInMonth, tt.want, tt.days)
		}
	}
}

func TestStreakAndSummary(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	c := LoadCalendar(ctx, repo, nil)

	for d := 1; d <= 4; d++ {
		c.SetField(ctx, day(2025, time.March, d), LogPatch{GymAttended: boolPtr(true), StudyHours: floatPtr(1.5)})
	}
	c.SetField(ctx, day(2025, time.March, 6), LogPatch{NoSmoking: boolPtr(true)})

	// Today (the 5th) not yet logged: the streak through yesterday still counts.
	if got := c.Streak(day(2025, time.March, 5), HabitGym); got != 4 {
		t.Fatalf("gym streak=%d, want 4", got)
	}
	if got := c.Streak(day(2025, time.March, 6), HabitGym); got != 0 {
		t.Fatalf("gym streak after gap=%d, want 0", got)
	}
	if got := c.Streak(day(2025, time.March, 6), HabitNoSmoking); got != 1 {
		t.Fatalf("no-smoking streak=%d, want 1", got)
	}

	s := c.Summary(day(2025, time.March, 1), day(2025, time.March, 7))
	if s.Days != 7 || s.DaysLogged != 5 || s.GymDays != 4 || s.StudyHours != 6 || s.NoSmokingDays != 1 {
		t.Fatalf("summary=%+v", s)
	}
	if empty := c.Summary(day(2025, time.March, 7), day(2025, time.March, 1)); empty.Days != 0 {
		t.Fatalf("reversed range summary=%+v", empty)
	}
}

func TestCorruptLogsDiscarded(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	if err := repo.KV().Put(ctx, storage.KeyDailyLogs, []byte(`{"2025-01-01": true}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	c := LoadCalendar(ctx, repo, nil)
	if c.Len() != 0 {
		t.Fatalf("corrupt logs were kept: %d", c.Len())
	}
	// The next mutation overwrites the corrupt blob.
	c.SetField(ctx, day(2025, time.January, 2), LogPatch{Hydrated: boolPtr(true)})
	logs, err := repo.LoadDailyLogs(ctx)
	if err != nil {
		t.Fatalf("LoadDailyLogs: %v", err)
	}
	if len(logs) != 1 || !logs["2025-01-02"].Habits.Hydrated {
		t.Fatalf("logs=%+v", logs)
	}
}

func TestWorkoutSplit(t *testing.T) {
	tests := map[time.Weekday]WorkoutKind{
		time.Monday:    WorkoutPush,
		time.Tuesday:   WorkoutPull,
		time.Wednesday: WorkoutLegs,
		time.Thursday:  WorkoutPush,
		time.Friday:    WorkoutPull,
		time.Saturday:  WorkoutLegs,
		time.Sunday:    WorkoutRest,
	}
	for wd, want := range tests {
		if got := WorkoutKindFor(wd); got != want {
			t.Fatalf("WorkoutKindFor(%s)=%s, want %s", wd, got, want)
		}
	}
	w := WorkoutFor(day(2025, time.January, 6)) // Monday
	if w.Name != "Push Day" || len(w.Exercises) == 0 {
		t.Fatalf("WorkoutFor(Monday)=%+v", w)
	}
	if rest := WorkoutFor(day(2025, time.January, 5)); len(rest.Exercises) != 0 {
		t.Fatalf("rest day has exercises")
	}
}
