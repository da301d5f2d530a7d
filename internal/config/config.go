// Package config handles service configuration
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr            string
	InferenceAddr       string
	AllowedOrigins      []string
	AnalysisRate        float64 // Hz
	VisibilityThreshold float64
	AppearFrames        int
	DisappearFrames     int
	MaxVisibleFeedback  int
	PerfectScore        float64
	PerfectFrames       int
	CompletedDisplayMS  int
	Language            string
	MirrorFrontCamera   bool
	HeadroomDistScaling bool
}

func Load() *Config {
	return &Config{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8000"),
		InferenceAddr:       getEnv("INFERENCE_ADDR", "localhost:50051"),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		AnalysisRate:        getEnvFloat("ANALYSIS_RATE", 10.0),
		VisibilityThreshold: getEnvFloat("VISIBILITY_THRESHOLD", 0.5),
		AppearFrames:        getEnvInt("APPEAR_FRAMES", 3),
		DisappearFrames:     getEnvInt("DISAPPEAR_FRAMES", 5),
		MaxVisibleFeedback:  getEnvInt("MAX_VISIBLE_FEEDBACK", 5),
		PerfectScore:        getEnvFloat("PERFECT_SCORE", 0.95),
		PerfectFrames:       getEnvInt("PERFECT_FRAMES", 10),
		CompletedDisplayMS:  getEnvInt("COMPLETED_DISPLAY_MS", 2000),
		Language:            getEnv("LANGUAGE", "en"),
		MirrorFrontCamera:   getEnvBool("MIRROR_FRONT_CAMERA", true),
		HeadroomDistScaling: getEnvBool("HEADROOM_DISTANCE_SCALING", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				result = append(result, t)
			}
		}
		return result
	}
	return def
}
