package store

import (
	"gitlab.com/zlyzol/settlemath/internal/models"
)

// Store represents methods required by the calculator to keep its history.
type Store interface {
	Ping() error

	InsertCalculation(record models.Calculation) error

	GetStats() (models.Stats, error)
	// GetCalculations returns at most limit records, newest first.
	GetCalculations(limit int) (models.Calculations, error)
}
