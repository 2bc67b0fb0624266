package models

import "time"

// LocalEntry is one key of a client's local store. Writes replace the whole
// value; the last write wins.
type LocalEntry struct {
	ClientID  string    `json:"client_id" gorm:"type:varchar(64);primaryKey"`
	Key       string    `json:"key" gorm:"column:entry_key;type:varchar(64);primaryKey"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (LocalEntry) TableName() string {
	return "local_entries"
}
