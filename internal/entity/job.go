package entity

import "time"

// Job is one scheduled piece of workshop work against a registry vehicle.
type Job struct {
	Registration string    `json:"registration"`
	Description  string    `json:"description"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}
