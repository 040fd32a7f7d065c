package calculator

import (
	"time"

	"gitlab.com/zlyzol/settlemath/internal/models"
)

// GetStartTime returns calculator start time
func (c *Calculator) GetStartTime() time.Time {
	return c.startTime
}

// GetHealth returns health status of the calculator and its store.
func (c *Calculator) GetHealth() *models.HealthStatus {
	ok := func(err error) string {
		if err == nil {
			return "Running"
		}
		return "Error: " + err.Error()
	}
	return &models.HealthStatus{
		Database:   ok(c.store.Ping()),
		Calculator: ok(c.Ping()),
	}
}

// GetStats returns counters over the recorded calculations
func (c *Calculator) GetStats() (*models.Stats, error) {
	stats, err := c.store.GetStats()
	if err != nil {
		return nil, err
	}
	stats.TimeRunning = time.Since(c.GetStartTime()).String()
	return &stats, nil
}

// GetCalculations returns the latest calculations, newest first. limit <= 0
// means the configured history limit.
func (c *Calculator) GetCalculations(limit int) (*models.Calculations, error) {
	if limit <= 0 || (c.cfg.Store.HistoryLimit > 0 && limit > c.cfg.Store.HistoryLimit) {
		limit = c.cfg.Store.HistoryLimit
	}
	calcs, err := c.store.GetCalculations(limit)
	if err != nil {
		return nil, err
	}
	return &calcs, nil
}
