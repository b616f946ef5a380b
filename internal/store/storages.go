// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/mshconnect/campus-hustle/internal/config"
	"github.com/mshconnect/campus-hustle/internal/logger"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	ProfileRepository ProfileRepository
	ReviewRepository  ReviewRepository

	close func() error
}

// NewStorages opens the backend selected by cfg: the SQL database when a DSN
// is configured (running migrations first), the JSON document otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if !cfg.UsesDatabase() {
		documentStore := NewDocumentStore(cfg.Files.DocumentPath, log)
		log.Info().Str("path", cfg.Files.DocumentPath).Msg("using JSON document storage")

		return &Storages{
			ProfileRepository: documentStore,
			ReviewRepository:  documentStore,
			close:             func() error { return nil },
		}, nil
	}

	db, err := NewConnectDatabase(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}
	log.Info().Str("dialect", db.dialect).Msg("using SQL storage")

	return &Storages{
		ProfileRepository: NewProfileRepository(db, log),
		ReviewRepository:  NewReviewRepository(db, log),
		close:             db.Close,
	}, nil
}

// Close releases the underlying database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}
