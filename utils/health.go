package utils

import (
	"sync"
	"time"
)

// HealthStatus represents the last observed status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	Calendar  bool      `json:"calendar"`
	Contacts  bool      `json:"contacts"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// SetHealthStatus stores a new health snapshot. Called by the keepalive
// probe after each round of upstream checks.
func SetHealthStatus(s HealthStatus) {
	healthMu.Lock()
	defer healthMu.Unlock()
	s.CheckedAt = time.Now()
	currentHealth = s
}
