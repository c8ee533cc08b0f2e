package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenit/huella-digital/internal/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s := New(mr.Addr())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	first, err := s.Append(ctx, &domain.Calculation{Level: "Low", TopContribution: "-"})
	require.NoError(t, err)
	second, err := s.Append(ctx, &domain.Calculation{Level: "Medium", TopContribution: "Gaming"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	_, err := s.Append(ctx, &domain.Calculation{StreamHoursWeek: 1, Level: "Low", TopContribution: "Streaming"})
	require.NoError(t, err)
	_, err = s.Append(ctx, &domain.Calculation{StreamHoursWeek: 2, Level: "Low", TopContribution: "Streaming"})
	require.NoError(t, err)
	_, err = s.Append(ctx, &domain.Calculation{StreamHoursWeek: 3, Level: "Low", TopContribution: "Streaming"})
	require.NoError(t, err)

	rows, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, float64(3), rows[0].StreamHoursWeek)
	assert.Equal(t, float64(1), rows[2].StreamHoursWeek)
}

func TestListLimit(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Append(ctx, &domain.Calculation{Level: "Low", TopContribution: "-"})
		require.NoError(t, err)
	}

	rows, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(5), rows[0].ID)
	assert.Equal(t, int64(4), rows[1].ID)
}

func TestListEmpty(t *testing.T) {
	s := setupTestStore(t)

	rows, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRoundTripPreservesFields(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	in := &domain.Calculation{
		StreamHoursWeek:     10,
		GamingHoursWeek:     5,
		VideocallsHoursWeek: 2,
		SocialHoursWeek:     3,
		CloudHoursWeek:      1,
		WeeksPerMonth:       4.345,
		CO2PerKWh:           0.45,
		TotalKWhMonth:       7.7341,
		TotalCO2Month:       3.480345,
		Level:               "Low",
		TopContribution:     "Streaming",
	}
	stored, err := s.Append(ctx, in)
	require.NoError(t, err)

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	got := rows[0]
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, in.TotalCO2Month, got.TotalCO2Month)
	assert.Equal(t, in.Level, got.Level)
	assert.Equal(t, in.TopContribution, got.TopContribution)
	assert.True(t, stored.CreatedAt.Equal(got.CreatedAt))
}
