// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/models"
)

// profileRepository is the SQL implementation of [ProfileRepository] over the
// "profiles" table. Writes go through [DB.inWriteTx].
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListProfilesQuery()
	if err != nil {
		log.Err(err).Str("func", "profileRepository.List").Msg("failed to create query")
		return nil, err
	}

	var profiles []models.Profile
	err = r.withRetry(ctx, "profileRepository.List", func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		profiles = make([]models.Profile, 0, 50)
		for rows.Next() {
			profile, scanErr := scanProfile(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			profiles = append(profiles, profile)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "profileRepository.List").Msg("failed to list profiles")
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) Get(ctx context.Context, id string) (models.Profile, error) {
	query, args, err := r.buildGetProfileQuery(id, false)
	if err != nil {
		return models.Profile{}, err
	}

	return r.queryProfile(ctx, "profileRepository.Get", query, args)
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (models.Profile, error) {
	query, args, err := r.buildFindProfileByEmailQuery(email)
	if err != nil {
		return models.Profile{}, err
	}

	return r.queryProfile(ctx, "profileRepository.FindByEmail", query, args)
}

func (r *profileRepository) queryProfile(ctx context.Context, funcName, query string, args []any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	err := r.withRetry(ctx, funcName, func() error {
		var scanErr error
		profile, scanErr = scanProfile(r.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		log.Err(err).Str("func", funcName).Msg("failed to query profile")
	}

	return profile, err
}

func (r *profileRepository) Create(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertProfileQuery(profile)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.Create").Msg("failed to create query")
		return models.Profile{}, err
	}

	err = r.inWriteTx(ctx, "profileRepository.Create", func(tx *sql.Tx) error {
		if err := r.checkEmailFree(ctx, tx, profile.Email, ""); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailAlreadyExists) {
			log.Err(err).Str("func", "profileRepository.Create").Msg("failed to create profile")
		}
		return models.Profile{}, err
	}

	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, mutate ProfileMutator) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var updated models.Profile
	err := r.inWriteTx(ctx, "profileRepository.Update", func(tx *sql.Tx) error {
		profile, err := r.lockProfile(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := mutate(&profile); err != nil {
			return err
		}
		profile.ID = id

		if err := r.checkEmailFree(ctx, tx, profile.Email, id); err != nil {
			return err
		}

		if err := r.saveProfile(ctx, tx, profile); err != nil {
			return err
		}

		updated = profile
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "profileRepository.Update").Str("profile_id", id).Msg("profile was not updated")
		return models.Profile{}, err
	}

	return updated, nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleteReviews, reviewArgs, err := r.buildDeleteProfileReviewsQuery(id)
	if err != nil {
		return err
	}
	deleteProfile, profileArgs, err := r.buildDeleteProfileQuery(id)
	if err != nil {
		return err
	}

	err = r.inWriteTx(ctx, "profileRepository.Delete", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteReviews, reviewArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, deleteProfile, profileArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		log.Err(err).Str("func", "profileRepository.Delete").Str("profile_id", id).Msg("failed to delete profile")
	}

	return err
}

// lockProfile reads the profile inside tx, locking its row where the
// database supports it.
func (db *DB) lockProfile(ctx context.Context, tx *sql.Tx, id string) (models.Profile, error) {
	query, args, err := db.buildGetProfileQuery(id, true)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := scanProfile(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (db *DB) saveProfile(ctx context.Context, tx *sql.Tx, profile models.Profile) error {
	query, args, err := db.buildUpdateProfileQuery(profile)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (db *DB) checkEmailFree(ctx context.Context, tx *sql.Tx, email, exceptID string) error {
	query, args, err := db.buildEmailTakenQuery(email, exceptID)
	if err != nil {
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if count > 0 {
		return ErrEmailAlreadyExists
	}
	return nil
}
