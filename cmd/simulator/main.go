package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/greenit/huella-digital/internal/config"
)

type submission struct {
	StreamHoursWeek     float64 `json:"stream_video_hours_week"`
	GamingHoursWeek     float64 `json:"gaming_hours_week"`
	VideocallsHoursWeek float64 `json:"videocalls_hours_week"`
	SocialHoursWeek     float64 `json:"social_hours_week"`
	CloudHoursWeek      float64 `json:"cloud_hours_week"`
}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	target := config.APIURL() + "/api/calculations"
	client := &http.Client{Timeout: 10 * time.Second}

	for i := 0; i < 20; i++ {
		s := submission{
			StreamHoursWeek:     rand.Float64() * 30,
			GamingHoursWeek:     rand.Float64() * 20,
			VideocallsHoursWeek: rand.Float64() * 15,
			SocialHoursWeek:     rand.Float64() * 25,
			CloudHoursWeek:      rand.Float64() * 10,
		}
		payload, _ := json.Marshal(s)

		resp, err := client.Post(target, "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Error().Err(err).Msg("submit failed")
			continue
		}
		resp.Body.Close()
		log.Info().Int("status", resp.StatusCode).Msg("submitted")
		time.Sleep(200 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
