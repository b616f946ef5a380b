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

// reviewRepository is the SQL implementation of [ReviewRepository]. A review
// insert and the rating update of its profile share one transaction.
type reviewRepository struct {
	*DB
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reviewRepository) AddReview(ctx context.Context, profileID string, review models.Review, apply ReviewApplier) (models.Review, error) {
	log := logger.FromContext(ctx)

	var accepted models.Review
	err := r.inWriteTx(ctx, "reviewRepository.AddReview", func(tx *sql.Tx) error {
		profile, err := r.lockProfile(ctx, tx, profileID)
		if err != nil {
			return err
		}

		candidate := review
		candidate.ProfileID = profileID
		if err := apply(&profile, &candidate); err != nil {
			return err
		}

		if err := r.saveProfile(ctx, tx, profile); err != nil {
			return err
		}

		query, args, err := r.buildInsertReviewQuery(candidate)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		accepted = candidate
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			log.Err(err).Str("func", "reviewRepository.AddReview").Str("profile_id", profileID).Msg("failed to add review")
		}
		return models.Review{}, err
	}

	return accepted, nil
}

func (r *reviewRepository) ListReviews(ctx context.Context, profileID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	existsQuery, existsArgs, err := r.buildGetProfileQuery(profileID, false)
	if err != nil {
		return nil, err
	}
	query, args, err := r.buildListReviewsQuery(profileID)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	err = r.withRetry(ctx, "reviewRepository.ListReviews", func() error {
		if _, err := scanProfile(r.DB.QueryRowContext(ctx, existsQuery, existsArgs...)); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrProfileNotFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		reviews = make([]models.Review, 0, 16)
		for rows.Next() {
			review, err := scanReview(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			reviews = append(reviews, review)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			log.Err(err).Str("func", "reviewRepository.ListReviews").Str("profile_id", profileID).Msg("failed to list reviews")
		}
		return nil, err
	}

	return reviews, nil
}
