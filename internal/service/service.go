package service

import (
	"context"
	"time"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/footprint"
	"github.com/greenit/huella-digital/internal/metrics"
	"github.com/greenit/huella-digital/internal/storage"
)

// SaveRequest carries the raw usage inputs and config of one submission.
// Totals supplied by clients are deliberately absent: the server always
// recomputes, so the stored CO2 = kWh x factor invariant holds.
type SaveRequest struct {
	StreamHoursWeek     float64
	GamingHoursWeek     float64
	VideocallsHoursWeek float64
	SocialHoursWeek     float64
	CloudHoursWeek      float64

	WeeksPerMonth float64
	CO2PerKWh     float64
}

// Service computes footprint results and persists them.
type Service struct {
	store   storage.Store
	maxList int
}

func New(store storage.Store, maxList int) *Service {
	if maxList <= 0 {
		maxList = storage.DefaultListLimit
	}
	return &Service{store: store, maxList: maxList}
}

// Save sanitizes the submission, computes the result and appends the
// record. The returned row carries the sanitized inputs, the effective
// config and the store-assigned id and timestamp.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*domain.Calculation, error) {
	start := time.Now()

	usage := footprint.UsageHours{
		Stream:     req.StreamHoursWeek,
		Gaming:     req.GamingHoursWeek,
		Videocalls: req.VideocallsHoursWeek,
		Social:     req.SocialHoursWeek,
		Cloud:      req.CloudHoursWeek,
	}.Sanitized()
	cfg := footprint.Config{
		WeeksPerMonth: req.WeeksPerMonth,
		CO2PerKWh:     req.CO2PerKWh,
	}.WithDefaults()

	res := footprint.Compute(usage, cfg)

	stored, err := s.store.Append(ctx, &domain.Calculation{
		StreamHoursWeek:     usage.Stream,
		GamingHoursWeek:     usage.Gaming,
		VideocallsHoursWeek: usage.Videocalls,
		SocialHoursWeek:     usage.Social,
		CloudHoursWeek:      usage.Cloud,
		WeeksPerMonth:       cfg.WeeksPerMonth,
		CO2PerKWh:           cfg.CO2PerKWh,
		TotalKWhMonth:       res.TotalKWhMonth,
		TotalCO2Month:       res.TotalCO2Month,
		Level:               string(res.Level),
		TopContribution:     res.TopContribution,
	})
	if err != nil {
		return nil, err
	}

	metrics.CalculationsSaved.WithLabelValues(stored.Level).Inc()
	metrics.SaveDuration.Observe(time.Since(start).Seconds())
	return stored, nil
}

// List returns stored calculations newest first, capped at the configured
// history limit.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if limit <= 0 || limit > s.maxList {
		limit = s.maxList
	}
	rows, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	metrics.HistoryReads.Inc()
	return rows, nil
}

// Ping reports store reachability for the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
