package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database reachability and connection pool pressure.
type HealthStatus struct {
	Status          string        `json:"status"`
	ResponseTime    time.Duration `json:"response_time_ms"`
	OpenConnections int           `json:"open_connections"`
	InUse           int           `json:"in_use"`
	Idle            int           `json:"idle"`
	WaitCount       int64         `json:"wait_count"`
	MaxOpenConns    int           `json:"max_open_conns"`
}

// Health pings the database and returns pool statistics. A failed ping
// returns the unhealthy status alongside the error so callers can serve
// both.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	return Health(ctx, c.db)
}

// Health checks connectivity on a raw connection pool.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    time.Since(start),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
