package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name            string
		maxOpenConns    int
		maxIdleConns    int
		connMaxLifetime time.Duration
		connMaxIdleTime time.Duration
		wantOpen        int
		wantIdle        int
		wantLifetime    time.Duration
		wantIdleTime    time.Duration
	}{
		{
			name:         "all defaults",
			wantOpen:     20,
			wantIdle:     5,
			wantLifetime: 5 * time.Minute,
			wantIdleTime: 10 * time.Minute,
		},
		{
			name:            "explicit values kept",
			maxOpenConns:    50,
			maxIdleConns:    10,
			connMaxLifetime: time.Minute,
			connMaxIdleTime: 2 * time.Minute,
			wantOpen:        50,
			wantIdle:        10,
			wantLifetime:    time.Minute,
			wantIdleTime:    2 * time.Minute,
		},
		{
			name:         "idle clamped to open",
			maxOpenConns: 4,
			maxIdleConns: 9,
			wantOpen:     4,
			wantIdle:     4,
			wantLifetime: 5 * time.Minute,
			wantIdleTime: 10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(
				tt.maxOpenConns, tt.maxIdleConns, tt.connMaxLifetime, tt.connMaxIdleTime)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLifetime, lifetime)
			assert.Equal(t, tt.wantIdleTime, idleTime)
		})
	}
}
