// Package postgres implements the calculation store on PostgreSQL via
// sqlx over the pgx stdlib driver.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id                      BIGSERIAL PRIMARY KEY,
	created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
	stream_video_hours_week DOUBLE PRECISION NOT NULL DEFAULT 0,
	gaming_hours_week       DOUBLE PRECISION NOT NULL DEFAULT 0,
	videocalls_hours_week   DOUBLE PRECISION NOT NULL DEFAULT 0,
	social_hours_week       DOUBLE PRECISION NOT NULL DEFAULT 0,
	cloud_hours_week        DOUBLE PRECISION NOT NULL DEFAULT 0,
	weeks_per_month         DOUBLE PRECISION NOT NULL DEFAULT 4.345,
	co2_per_kwh             DOUBLE PRECISION NOT NULL DEFAULT 0.45,
	total_kwh_month         DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_co2_month         DOUBLE PRECISION NOT NULL DEFAULT 0,
	level                   VARCHAR(16) NOT NULL,
	top_contribution        VARCHAR(32) NOT NULL
)`

type Store struct {
	db *sqlx.DB
}

// New ensures the calculations table exists and returns the store.
func New(db *sqlx.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure calculations table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Append(ctx context.Context, c *domain.Calculation) (*domain.Calculation, error) {
	const q = `
		INSERT INTO calculations (
			stream_video_hours_week, gaming_hours_week, videocalls_hours_week,
			social_hours_week, cloud_hours_week,
			weeks_per_month, co2_per_kwh,
			total_kwh_month, total_co2_month, level, top_contribution
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, created_at`

	stored := *c
	err := s.db.QueryRowxContext(ctx, q,
		c.StreamHoursWeek, c.GamingHoursWeek, c.VideocallsHoursWeek,
		c.SocialHoursWeek, c.CloudHoursWeek,
		c.WeeksPerMonth, c.CO2PerKWh,
		c.TotalKWhMonth, c.TotalCO2Month, c.Level, c.TopContribution,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert calculation: %w", err)
	}
	return &stored, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	const q = `
		SELECT id, created_at,
			stream_video_hours_week, gaming_hours_week, videocalls_hours_week,
			social_hours_week, cloud_hours_week,
			weeks_per_month, co2_per_kwh,
			total_kwh_month, total_co2_month, level, top_contribution
		FROM calculations
		ORDER BY id DESC
		LIMIT $1`

	out := make([]domain.Calculation, 0)
	if err := s.db.SelectContext(ctx, &out, q, storage.NormalizeLimit(limit)); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error { return s.db.Close() }
