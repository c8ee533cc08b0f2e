// Package footprint estimates a household's monthly digital carbon
// footprint from self-reported weekly usage hours.
package footprint

import "math"

// Level classifies monthly emissions.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Energy factors in kWh per hour of activity.
const (
	FactorStream     = 0.08
	FactorGaming     = 0.12
	FactorVideocalls = 0.10
	FactorSocial     = 0.05
	FactorCloud      = 0.03
)

// Classification thresholds in kg CO2 per month: at most ThresholdLow is
// Low, at most ThresholdHigh is Medium, anything above is High.
const (
	ThresholdLow  = 20.0
	ThresholdHigh = 50.0
)

const (
	DefaultWeeksPerMonth = 4.345
	DefaultCO2PerKWh     = 0.45
)

// TopNone is reported as the top contribution when every category
// contributes zero.
const TopNone = "-"

// Category display labels, in tie-break priority order.
const (
	LabelStream     = "Streaming"
	LabelGaming     = "Gaming"
	LabelVideocalls = "Video calls"
	LabelSocial     = "Social media"
	LabelCloud      = "Cloud"
)

// UsageHours holds self-reported weekly hours per activity category.
type UsageHours struct {
	Stream     float64
	Gaming     float64
	Videocalls float64
	Social     float64
	Cloud      float64
}

// Sanitized returns a copy with every non-finite or negative value
// replaced by zero.
func (u UsageHours) Sanitized() UsageHours {
	return UsageHours{
		Stream:     sanitizeHours(u.Stream),
		Gaming:     sanitizeHours(u.Gaming),
		Videocalls: sanitizeHours(u.Videocalls),
		Social:     sanitizeHours(u.Social),
		Cloud:      sanitizeHours(u.Cloud),
	}
}

// Config carries the two tunable constants of the calculation.
type Config struct {
	WeeksPerMonth float64
	CO2PerKWh     float64
}

// WithDefaults returns a copy where any non-finite or non-positive value
// falls back to its default.
func (c Config) WithDefaults() Config {
	return Config{
		WeeksPerMonth: sanitizeConfig(c.WeeksPerMonth, DefaultWeeksPerMonth),
		CO2PerKWh:     sanitizeConfig(c.CO2PerKWh, DefaultCO2PerKWh),
	}
}

// Result is the derived output of a computation.
type Result struct {
	TotalKWhMonth   float64
	TotalCO2Month   float64
	Level           Level
	TopContribution string
}

// Compute maps usage hours and a config to monthly energy, monthly
// emissions, a classification level and the dominant category. Inputs are
// sanitized first, so Compute never fails: it is pure, deterministic and
// total.
func Compute(usage UsageHours, cfg Config) Result {
	usage = usage.Sanitized()
	cfg = cfg.WithDefaults()

	contributions := [5]struct {
		label string
		kwh   float64
	}{
		{LabelStream, usage.Stream * FactorStream},
		{LabelGaming, usage.Gaming * FactorGaming},
		{LabelVideocalls, usage.Videocalls * FactorVideocalls},
		{LabelSocial, usage.Social * FactorSocial},
		{LabelCloud, usage.Cloud * FactorCloud},
	}

	var kwhWeek float64
	top := TopNone
	best := 0.0
	for _, part := range contributions {
		kwhWeek += part.kwh
		// strict > keeps the earlier category on ties
		if part.kwh > best {
			best = part.kwh
			top = part.label
		}
	}

	kwhMonth := kwhWeek * cfg.WeeksPerMonth
	co2Month := kwhMonth * cfg.CO2PerKWh

	return Result{
		TotalKWhMonth:   kwhMonth,
		TotalCO2Month:   co2Month,
		Level:           Classify(co2Month),
		TopContribution: top,
	}
}

// Classify thresholds monthly emissions into the three-tier level.
func Classify(co2Month float64) Level {
	switch {
	case co2Month <= ThresholdLow:
		return LevelLow
	case co2Month <= ThresholdHigh:
		return LevelMedium
	default:
		return LevelHigh
	}
}

func sanitizeHours(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func sanitizeConfig(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}
