package domain

import "time"

type DatabaseMonitorStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastCheckAt     *time.Time `json:"last_check_at,omitempty"`
	Reachable       bool       `json:"reachable"`
	DatabaseVersion string     `json:"database_version,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}
