package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DOJO_DATA", "/srv/dojo")
	t.Setenv("DOJO_EMPTY", "")

	assert.Equal(t, "/srv/dojo", GetEnv("DOJO_DATA", "data"))
	assert.Equal(t, "data", GetEnv("DOJO_EMPTY", "data"), "empty counts as unset")
	assert.Equal(t, "data", GetEnv("DOJO_UNSET_KEY", "data"))
}

func TestGetEnvNumbers(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantInt   int
		wantFloat float64
	}{
		{name: "integer", value: "12", wantInt: 12, wantFloat: 12},
		{name: "negative", value: "-3", wantInt: -3, wantFloat: -3},
		{name: "fraction", value: "0.5", wantInt: 7, wantFloat: 0.5},
		{name: "garbage", value: "many", wantInt: 7, wantFloat: 1.5},
		{name: "unset", value: "", wantInt: 7, wantFloat: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DOJO_NUMBER", tt.value)

			assert.Equal(t, tt.wantInt, GetEnvInt("DOJO_NUMBER", 7))
			assert.Equal(t, tt.wantFloat, GetEnvFloat("DOJO_NUMBER", 1.5))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "250ms", want: 250 * time.Millisecond},
		{value: "1h30m", want: 90 * time.Minute},
		{value: "5", want: time.Second},
		{value: "", want: time.Second},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv("DOJO_TIMEOUT", tt.value)
			assert.Equal(t, tt.want, GetEnvDuration("DOJO_TIMEOUT", time.Second))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{value: "true", want: true},
		{value: "TRUE", want: true},
		{value: "1", want: true},
		{value: "false", fallback: true, want: false},
		{value: "0", fallback: true, want: false},
		{value: "yes", fallback: true, want: true},
		{value: "", fallback: true, want: true},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv("DOJO_FLAG", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("DOJO_FLAG", tt.fallback))
		})
	}
}
