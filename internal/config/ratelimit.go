package config

import "fmt"

// RateLimitConfig holds per-client limits for write-heavy endpoints.
type RateLimitConfig struct {
	// FeedbackPerMinute is the sustained feedback submissions allowed per client.
	FeedbackPerMinute float64 `yaml:"feedback_per_minute"`
	// FeedbackBurst is the feedback burst size per client.
	FeedbackBurst int `yaml:"feedback_burst"`
}

// LoadRateLimitConfigFromEnv loads rate limit configuration from environment variables.
func LoadRateLimitConfigFromEnv() RateLimitConfig {
	return RateLimitConfig{
		FeedbackPerMinute: GetEnvFloat("FEEDBACK_RATE_PER_MINUTE", 6),
		FeedbackBurst:     GetEnvInt("FEEDBACK_RATE_BURST", 3),
	}
}

// Validate validates rate limit configuration.
func (c RateLimitConfig) Validate() error {
	if c.FeedbackPerMinute <= 0 {
		return fmt.Errorf("FeedbackPerMinute must be greater than 0")
	}
	if c.FeedbackBurst <= 0 {
		return fmt.Errorf("FeedbackBurst must be greater than 0")
	}
	return nil
}
