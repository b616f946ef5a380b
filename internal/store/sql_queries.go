// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshconnect/campus-hustle/models"
)

const (
	profilesTable = "profiles"
	reviewsTable  = "reviews"
)

// profileColumns is the column order shared by every profile SELECT and
// INSERT; scanProfile and profileValues depend on it.
var profileColumns = []string{
	"id",
	"email",
	"password",
	"name",
	"university",
	"category",
	"location",
	"bio",
	"profile_image",
	"whatsapp",
	"services",
	"pricing",
	"rating",
	"review_count",
	"products",
	"featured",
	"created_at",
	"updated_at",
}

var reviewColumns = []string{
	"id",
	"profile_id",
	"name",
	"rating",
	"comment",
	"hustler",
	"university",
	"date",
}

func (db *DB) buildListProfilesQuery() (string, []any, error) {
	query, args, err := db.builder.
		Select(profileColumns...).
		From(profilesTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetProfileQuery selects one profile by id. forUpdate adds the row lock
// used inside write transactions.
func (db *DB) buildGetProfileQuery(id string, forUpdate bool) (string, []any, error) {
	builder := db.builder.
		Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"id": id})
	if suffix := db.lockForUpdate(); forUpdate && suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildFindProfileByEmailQuery(email string) (string, []any, error) {
	query, args, err := db.builder.
		Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"LOWER(email)": normalizeEmail(email)}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildEmailTakenQuery counts other profiles using email.
func (db *DB) buildEmailTakenQuery(email, exceptID string) (string, []any, error) {
	builder := db.builder.
		Select("COUNT(*)").
		From(profilesTable).
		Where(sq.Eq{"LOWER(email)": normalizeEmail(email)})
	if exceptID != "" {
		builder = builder.Where(sq.NotEq{"id": exceptID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertProfileQuery(profile models.Profile) (string, []any, error) {
	values, err := profileValues(profile)
	if err != nil {
		return "", nil, err
	}

	query, args, err := db.builder.
		Insert(profilesTable).
		Columns(profileColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery rewrites every column except id from profile.
func (db *DB) buildUpdateProfileQuery(profile models.Profile) (string, []any, error) {
	values, err := profileValues(profile)
	if err != nil {
		return "", nil, err
	}

	builder := db.builder.Update(profilesTable)
	for i, column := range profileColumns {
		if column == "id" {
			continue
		}
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.Where(sq.Eq{"id": profile.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteProfileQuery(id string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(profilesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteProfileReviewsQuery(profileID string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(reviewsTable).
		Where(sq.Eq{"profile_id": profileID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildInsertReviewQuery(review models.Review) (string, []any, error) {
	query, args, err := db.builder.
		Insert(reviewsTable).
		Columns(reviewColumns...).
		Values(
			review.ID,
			review.ProfileID,
			review.Name,
			review.Rating,
			review.Comment,
			review.Hustler,
			review.University,
			review.Date.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListReviewsQuery(profileID string) (string, []any, error) {
	query, args, err := db.builder.
		Select(reviewColumns...).
		From(reviewsTable).
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// profileValues returns profile's column values in profileColumns order.
// List columns are stored as JSON text so both databases share one schema.
func profileValues(profile models.Profile) ([]any, error) {
	services, err := encodeColumn(profile.Services)
	if err != nil {
		return nil, err
	}
	products, err := encodeColumn(profile.Products)
	if err != nil {
		return nil, err
	}

	return []any{
		profile.ID,
		profile.Email,
		profile.Password,
		profile.Name,
		profile.University,
		profile.Category,
		profile.Location,
		profile.Bio,
		profile.ProfileImage,
		profile.WhatsApp,
		services,
		profile.Pricing,
		profile.Rating,
		profile.ReviewCount,
		products,
		profile.Featured,
		profile.CreatedAt.UTC(),
		profile.UpdatedAt.UTC(),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		profile  models.Profile
		services string
		products string
	)

	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.Password,
		&profile.Name,
		&profile.University,
		&profile.Category,
		&profile.Location,
		&profile.Bio,
		&profile.ProfileImage,
		&profile.WhatsApp,
		&services,
		&profile.Pricing,
		&profile.Rating,
		&profile.ReviewCount,
		&products,
		&profile.Featured,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return models.Profile{}, err
	}

	if err := decodeColumn(services, &profile.Services); err != nil {
		return models.Profile{}, err
	}
	if err := decodeColumn(products, &profile.Products); err != nil {
		return models.Profile{}, err
	}
	if profile.Products == nil {
		profile.Products = []models.Product{}
	}

	return profile, nil
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ID,
		&review.ProfileID,
		&review.Name,
		&review.Rating,
		&review.Comment,
		&review.Hustler,
		&review.University,
		&review.Date,
	)
	return review, err
}

func encodeColumn(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(raw), nil
}

func decodeColumn(raw string, dst any) error {
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
