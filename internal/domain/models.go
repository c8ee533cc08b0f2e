package domain

import "time"

// Calculation is one stored footprint calculation. Rows are append-only:
// once persisted they are never updated or deleted.
type Calculation struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	StreamHoursWeek     float64 `db:"stream_video_hours_week" json:"stream_video_hours_week"`
	GamingHoursWeek     float64 `db:"gaming_hours_week" json:"gaming_hours_week"`
	VideocallsHoursWeek float64 `db:"videocalls_hours_week" json:"videocalls_hours_week"`
	SocialHoursWeek     float64 `db:"social_hours_week" json:"social_hours_week"`
	CloudHoursWeek      float64 `db:"cloud_hours_week" json:"cloud_hours_week"`

	WeeksPerMonth float64 `db:"weeks_per_month" json:"weeks_per_month"`
	CO2PerKWh     float64 `db:"co2_per_kwh" json:"co2_per_kwh"`

	TotalKWhMonth   float64 `db:"total_kwh_month" json:"total_kwh_month"`
	TotalCO2Month   float64 `db:"total_co2_month" json:"total_co2_month"`
	Level           string  `db:"level" json:"level"`
	TopContribution string  `db:"top_contribution" json:"top_contribution"`
}
