package models

import (
	"time"
)

// Calculation is one evaluated request together with its outcome.
type Calculation struct {
	Time     time.Time         `json:"time"`
	Op       string            `json:"op"`
	Inputs   map[string]string `json:"inputs"`
	Result   map[string]string `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
	Duration int64             `json:"duration"` // nanoseconds
}

type Calculations []Calculation
