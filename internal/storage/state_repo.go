package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	KeyVitals      = "dashboard_state"
	KeyDailyLogs   = "daily_logs"
	KeyUniProgress = "uni_progress"
)

// ErrCorruptState is returned when a stored blob cannot be decoded into a valid state.
var ErrCorruptState = errors.New("corrupt persisted state")

// StateRepo is the serialization boundary for the persisted containers.
type StateRepo struct {
	kv *KVRepo
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{kv: NewKVRepo(db)}
}

func (r *StateRepo) KV() *KVRepo { return r.kv }

// LoadVitals returns nil when nothing is stored.
func (r *StateRepo) LoadVitals(ctx context.Context) (*Vitals, error) {
	raw, ok, err := r.kv.Get(ctx, KeyVitals)
	if err != nil || !ok {
		return nil, err
	}
	var v Vitals
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyVitals, err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyVitals, err)
	}
	return &v, nil
}

func (r *StateRepo) SaveVitals(ctx context.Context, v Vitals) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal vitals: %w", err)
	}
	return r.kv.Put(ctx, KeyVitals, data)
}

// LoadDailyLogs returns an empty map when nothing is stored.
func (r *StateRepo) LoadDailyLogs(ctx context.Context) (DailyLogs, error) {
	raw, ok, err := r.kv.Get(ctx, KeyDailyLogs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DailyLogs{}, nil
	}
	var logs DailyLogs
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyDailyLogs, err)
	}
	if err := logs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyDailyLogs, err)
	}
	if logs == nil {
		logs = DailyLogs{}
	}
	return logs, nil
}

func (r *StateRepo) SaveDailyLogs(ctx context.Context, logs DailyLogs) error {
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("marshal daily logs: %w", err)
	}
	return r.kv.Put(ctx, KeyDailyLogs, data)
}

// LoadUniProgress returns an empty map when nothing is stored.
func (r *StateRepo) LoadUniProgress(ctx context.Context) (UniProgress, error) {
	raw, ok, err := r.kv.Get(ctx, KeyUniProgress)
	if err != nil {
		return nil, err
	}
	if !ok {
		return UniProgress{}, nil
	}
	var p UniProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyUniProgress, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, KeyUniProgress, err)
	}
	if p == nil {
		p = UniProgress{}
	}
	return p, nil
}

func (r *StateRepo) SaveUniProgress(ctx context.Context, p UniProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal uni progress: %w", err)
	}
	return r.kv.Put(ctx, KeyUniProgress, data)
}

// ClearAll removes every container in a single transaction.
func (r *StateRepo) ClearAll(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyVitals, KeyDailyLogs, KeyUniProgress)
}
