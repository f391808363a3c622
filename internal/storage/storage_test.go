package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStateRepo(db)
}

func TestLoadVitalsAbsent(t *testing.T) {
	repo := newTestRepo(t)

	v, err := repo.LoadVitals(context.Background())
	if err != nil {
		t.Fatalf("LoadVitals: %v", err)
	}
	if v != nil {
		t.Fatalf("LoadVitals=%+v, want nil", v)
	}
}

func TestVitalsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	in := Vitals{
		LastUpdateDate:       "2025-01-02",
		ExperiencePoints:     245,
		WaterLiters:          1.5,
		StudyHours:           3,
		SmokingIncidents:     1,
		EnergyDrinkIncidents: 2,
	}
	if err := repo.SaveVitals(ctx, in); err != nil {
		t.Fatalf("SaveVitals: %v", err)
	}
	got, err := repo.LoadVitals(ctx)
	if err != nil {
		t.Fatalf("LoadVitals: %v", err)
	}
	if got == nil || *got != in {
		t.Fatalf("LoadVitals=%+v, want %+v", got, in)
	}
}

func TestCorruptBlobsReported(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"vitals not json", KeyVitals, "{not json"},
		{"vitals negative counter", KeyVitals, `{"lastUpdateDate":"2025-01-01","smokingIncidents":-1}`},
		{"vitals bad date", KeyVitals, `{"lastUpdateDate":"yesterday"}`},
		{"logs not json", KeyDailyLogs, "[1,2"},
		{"logs bad key", KeyDailyLogs, `{"monday":{"gymAttended":true}}`},
		{"logs study out of range", KeyDailyLogs, `{"2025-01-01":{"studyHours":13}}`},
		{"uni not json", KeyUniProgress, `{"ai/1":`},
		{"uni bad key", KeyUniProgress, `{"ai":true}`},
		{"uni bad task", KeyUniProgress, `{"ai/0":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			ctx := context.Background()
			if err := repo.KV().Put(ctx, tt.key, []byte(tt.raw)); err != nil {
				t.Fatalf("put: %v", err)
			}
			var err error
			switch tt.key {
			case KeyVitals:
				_, err = repo.LoadVitals(ctx)
			case KeyDailyLogs:
				_, err = repo.LoadDailyLogs(ctx)
			default:
				_, err = repo.LoadUniProgress(ctx)
			}
			if !errors.Is(err, ErrCorruptState) {
				t.Fatalf("err=%v, want ErrCorruptState", err)
			}
		})
	}
}

func TestUniProgressRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.LoadUniProgress(ctx)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("LoadUniProgress on empty db=%v,%v, want empty map", got, err)
	}

	in := UniProgress{UniTaskKey("ai", 2): true, UniTaskKey("fyp", 1): false}
	if err := repo.SaveUniProgress(ctx, in); err != nil {
		t.Fatalf("SaveUniProgress: %v", err)
	}
	got, err = repo.LoadUniProgress(ctx)
	if err != nil {
		t.Fatalf("LoadUniProgress: %v", err)
	}
	if len(got) != 2 || !got["ai/2"] || got["fyp/1"] {
		t.Fatalf("LoadUniProgress=%v", got)
	}
}

func TestClearAllRemovesEveryContainer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SaveVitals(ctx, Vitals{LastUpdateDate: "2025-01-01", ExperiencePoints: 10}); err != nil {
		t.Fatalf("SaveVitals: %v", err)
	}
	logs := DailyLogs{"2025-01-01": {GymAttended: true}}
	if err := repo.SaveDailyLogs(ctx, logs); err != nil {
		t.Fatalf("SaveDailyLogs: %v", err)
	}
	if err := repo.SaveUniProgress(ctx, UniProgress{"sec/1": true}); err != nil {
		t.Fatalf("SaveUniProgress: %v", err)
	}
	if err := repo.KV().Put(ctx, "unrelated", []byte("{}")); err != nil {
		t.Fatalf("put unrelated: %v", err)
	}

	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	keys, err := repo.KV().Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "unrelated" {
		t.Fatalf("keys after ClearAll=%v, want [unrelated]", keys)
	}

	got, err := repo.LoadDailyLogs(ctx)
	if err != nil {
		t.Fatalf("LoadDailyLogs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("LoadDailyLogs=%v, want empty", got)
	}
}
