package http

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/service"
)

func Register(app *fiber.App, svc *service.Service) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		if err := svc.Ping(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"ok": true, "db": 1})
	})

	api.Get("/calculations", func(c *fiber.Ctx) error {
		items, err := svc.List(c.Context(), c.QueryInt("limit", 0))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		if items == nil {
			items = []domain.Calculation{}
		}
		return c.JSON(items)
	})

	api.Post("/calculations", func(c *fiber.Ctx) error {
		req, err := parseSaveRequest(c.Body())
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "invalid JSON body"})
		}
		stored, err := svc.Save(c.Context(), req)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		return c.Status(201).JSON(stored)
	})
}

// parseSaveRequest decodes the submission leniently: a malformed or
// non-numeric field behaves exactly like an absent one and falls back to
// its default. Client-supplied totals and level are ignored; the server
// recomputes them.
func parseSaveRequest(body []byte) (service.SaveRequest, error) {
	fields := map[string]json.RawMessage{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return service.SaveRequest{}, err
		}
	}
	return service.SaveRequest{
		StreamHoursWeek:     numField(fields, "stream_video_hours_week", 0),
		GamingHoursWeek:     numField(fields, "gaming_hours_week", 0),
		VideocallsHoursWeek: numField(fields, "videocalls_hours_week", 0),
		SocialHoursWeek:     numField(fields, "social_hours_week", 0),
		CloudHoursWeek:      numField(fields, "cloud_hours_week", 0),
		WeeksPerMonth:       numField(fields, "weeks_per_month", 0),
		CO2PerKWh:           numField(fields, "co2_per_kwh", 0),
	}, nil
}

func numField(fields map[string]json.RawMessage, key string, fallback float64) float64 {
	raw, ok := fields[key]
	if !ok {
		return fallback
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	// tolerate numbers sent as strings
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return fallback
}
