package inmemorydb

import (
	"sync"

	"gitlab.com/zlyzol/settlemath/internal/models"
)

type InMemoryDb struct {
	mux          sync.Mutex
	maxRecords   int
	calculations models.Calculations
}

// NewClient returns an in-memory store keeping the last maxRecords
// calculations. maxRecords <= 0 keeps everything.
func NewClient(maxRecords int) (*InMemoryDb, error) {
	return &InMemoryDb{
		maxRecords:   maxRecords,
		calculations: make(models.Calculations, 0),
	}, nil
}

func (m *InMemoryDb) Ping() error {
	return nil
}

func (m *InMemoryDb) GetStats() (models.Stats, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	result := models.Stats{Ops: map[string]uint{}}
	result.CalculationCount = uint(len(m.calculations))
	if result.CalculationCount == 0 {
		return result, nil
	}
	var total int64
	for _, calc := range m.calculations {
		total += calc.Duration
		result.Ops[calc.Op]++
		if calc.Error != "" {
			result.ErrorCount++
		}
	}
	result.AvgDuration = float64(total) / float64(result.CalculationCount)
	return result, nil
}

func (m *InMemoryDb) GetCalculations(limit int) (models.Calculations, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if limit <= 0 || limit > len(m.calculations) {
		limit = len(m.calculations)
	}
	result := make(models.Calculations, 0, limit)
	for i := len(m.calculations) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.calculations[i])
	}
	return result, nil
}

func (m *InMemoryDb) InsertCalculation(calc models.Calculation) error {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.calculations = append(m.calculations, calc)
	if m.maxRecords > 0 && len(m.calculations) > m.maxRecords {
		m.calculations = append(models.Calculations(nil), m.calculations[len(m.calculations)-m.maxRecords:]...)
	}
	return nil
}
