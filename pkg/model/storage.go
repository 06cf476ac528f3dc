package model

import (
	"time"

	"gorm.io/gorm"
)

// StoredValue is a single entry of the key/value store backing the tracker.
type StoredValue struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex"`
	Value string
}

type SyncSettings struct {
	AutoSyncEnabled bool       `json:"autoSyncEnabled"`
	LastSyncTime    *time.Time `json:"lastSyncTime"`
}
