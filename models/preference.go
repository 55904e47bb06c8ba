package models

import (
	"time"

	"gorm.io/datatypes"
)

// Preference keeps one saved value of a session context, e.g. the branch
// display-name overrides or a profile's featured feedback ids.
type Preference struct {
	Scope     string         `gorm:"type:varchar(64);primaryKey" json:"scope"`
	Key       string         `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}
