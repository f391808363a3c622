package root

import (
	"context"
	"database/sql"

	"peak/internal/engine"
	"peak/internal/storage"
)

func (a *app) openDB(ctx context.Context) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func (a *app) openService(ctx context.Context, opts ...engine.Option) (*engine.Service, func(), error) {
	db, cleanup, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]engine.Option{engine.WithLogger(a.logger)}, opts...)
	return engine.NewService(ctx, db, opts...), cleanup, nil
}
