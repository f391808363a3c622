package engine

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"peak/internal/storage"
)

func taskFlags(ms ModuleStatus) (done, next []bool) {
	for _, ts := range ms.Tasks {
		done = append(done, ts.Done)
		next = append(next, ts.Next)
	}
	return done, next
}

func equalFlags(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRoadmapBuiltinState(t *testing.T) {
	a := LoadAcademics(context.Background(), openTestDB(t), nil)

	mods := a.Modules()
	if len(mods) != 3 || mods[0].Module.ID != "ai" || mods[1].Module.ID != "fyp" || mods[2].Module.ID != "sec" {
		t.Fatalf("modules=%+v", mods)
	}

	done, next := taskFlags(mods[0])
	if !equalFlags(done, []bool{true, false, false}) || !equalFlags(next, []bool{false, true, false}) {
		t.Fatalf("ai done=%v next=%v", done, next)
	}
	if mods[0].Completed != 1 {
		t.Fatalf("ai completed=%d, want 1", mods[0].Completed)
	}

	done, next = taskFlags(mods[2])
	if !equalFlags(done, []bool{false, false, false}) || !equalFlags(next, []bool{true, false, false}) {
		t.Fatalf("sec done=%v next=%v", done, next)
	}
}

func TestRoadmapNextFollowsPreviousTask(t *testing.T) {
	ctx := context.Background()
	a := LoadAcademics(ctx, openTestDB(t), nil)

	// Finishing a later task out of order marks the task after it as next too.
	if _, err := a.Toggle(ctx, "fyp", 3); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	ms, err := a.Module("fyp")
	if err != nil {
		t.Fatalf("Module: %v", err)
	}
	done, next := taskFlags(ms)
	if !equalFlags(done, []bool{true, false, true, false}) || !equalFlags(next, []bool{false, true, false, true}) {
		t.Fatalf("fyp done=%v next=%v", done, next)
	}

	// Undoing the first task makes it the only entry point at the start.
	ts, err := a.Toggle(ctx, "FYP", 1)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if ts.Done || !ts.Next {
		t.Fatalf("fyp/1 after undo=%+v", ts)
	}
	if _, ts, _ := a.Task("fyp", 2); ts.Next {
		t.Fatalf("fyp/2 must not be next once fyp/1 is open")
	}
}

func TestRoadmapTogglePersists(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	a := LoadAcademics(ctx, repo, nil)
	if _, err := a.Toggle(ctx, "Artificial Intelligence", 2); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := a.Toggle(ctx, "ai", 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	again := LoadAcademics(ctx, repo, nil)
	ms, _ := again.Module("ai")
	done, _ := taskFlags(ms)
	if !equalFlags(done, []bool{false, true, false}) {
		t.Fatalf("ai done after reload=%v", done)
	}

	stored, err := repo.LoadUniProgress(ctx)
	if err != nil {
		t.Fatalf("LoadUniProgress: %v", err)
	}
	if stored["ai/1"] || !stored["ai/2"] {
		t.Fatalf("stored=%v", stored)
	}
}

func TestRoadmapUnknownModuleOrTask(t *testing.T) {
	ctx := context.Background()
	a := LoadAcademics(ctx, openTestDB(t), nil)

	var pe ParseError
	if _, err := a.Toggle(ctx, "history", 1); !errors.As(err, &pe) || pe.Kind != "module" {
		t.Fatalf("unknown module err=%v", err)
	}
	if _, err := a.Toggle(ctx, "sec", 9); !errors.As(err, &pe) || pe.Input != "9" {
		t.Fatalf("unknown task err=%v", err)
	}
}

func TestCorruptUniProgressDiscarded(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)
	if err := repo.KV().Put(ctx, storage.KeyUniProgress, []byte(`{"ai/x":true}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	var buf bytes.Buffer
	a := LoadAcademics(ctx, repo, log.New(&buf, "", 0))
	if _, ts, _ := a.Task("ai", 1); !ts.Done {
		t.Fatalf("expected built-in state after discard")
	}
	if !strings.Contains(buf.String(), "discarding uni progress") {
		t.Fatalf("expected discard to be logged, got %q", buf.String())
	}
}

func TestServiceLoadsRoadmap(t *testing.T) {
	svc, cleanup := newTestService(t, fixedClock(2025, time.May, 1))
	defer cleanup()
	if got := len(svc.Academics().Modules()); got != 3 {
		t.Fatalf("modules=%d, want 3", got)
	}
}
