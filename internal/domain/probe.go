package domain

import "time"

type DatabaseInfo struct {
	Version    string    `json:"database_version"`
	ServerTime time.Time `json:"server_time"`
}

type APIInfo struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

type ConnectionTest struct {
	DatabaseVersion string    `json:"database_version"`
	ServerTime      time.Time `json:"server_time"`
	Status          string    `json:"status"`
}
