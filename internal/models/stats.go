package models

type Stats struct {
	CalculationCount uint            `json:"calculationCount"`
	ErrorCount       uint            `json:"errorCount"`
	AvgDuration      float64         `json:"avgDuration"`
	Ops              map[string]uint `json:"ops"`
	TimeRunning      string          `json:"timeRunning"`
}
