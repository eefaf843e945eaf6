// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassificator translates driver-specific errors into the sentinels
// of this package. Errors it does not recognise are returned unchanged.
type ErrorClassificator interface {
	Classify(err error) error
}

// DB is an open connection pool together with everything that differs
// between the supported backends: SQL placeholder style, goose dialect and
// driver error classification.
type DB struct {
	*sql.DB
	placeholder        sq.PlaceholderFormat
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns a squirrel statement builder using the backend's
// placeholder format.
func (db *DB) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// classify maps err through the backend's classifier.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	return db.errorClassificator.Classify(err)
}

// NewConnectDB opens a connection for cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Connector opens the database at most once and hands the same pool to
// every caller. A failed first attempt is remembered and returned again.
type Connector struct {
	cfg    config.DB
	logger *logger.Logger
	open   func(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error)

	once sync.Once
	db   *DB
	err  error
}

// NewConnector returns a Connector for cfg.
func NewConnector(cfg config.DB, log *logger.Logger) *Connector {
	return &Connector{cfg: cfg, logger: log, open: NewConnectDB}
}

// Connect returns the shared pool, opening it on the first call.
func (c *Connector) Connect(ctx context.Context) (*DB, error) {
	c.once.Do(func() {
		c.db, c.err = c.open(ctx, c.cfg, c.logger)
	})
	return c.db, c.err
}
