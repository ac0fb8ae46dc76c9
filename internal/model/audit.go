package model

import "time"

// AuditEvent records the metadata of one generation. The password itself
// is never persisted.
type AuditEvent struct {
	ID        int64
	Length    int
	Uppercase bool
	Digits    bool
	Special   bool
	Score     int
	CreatedAt time.Time
}

// AuditStats summarizes the generation audit log.
type AuditStats struct {
	Total           int64      `json:"total"`
	AverageLength   float64    `json:"average_length"`
	AverageScore    float64    `json:"average_score"`
	LastGeneratedAt *time.Time `json:"last_generated_at,omitempty"`
}
