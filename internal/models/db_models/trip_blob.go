package db_models

import (
	"time"

	"gorm.io/gorm"
)

// TripBlob is one persisted collection, stored wholesale as JSON. Exactly
// two keys exist: "itinerary" and "essentials". Every mutation overwrites
// the full payload; there are no partial writes.
type TripBlob struct {
	Key       string `gorm:"primaryKey"`
	Payload   string `gorm:"type:text"`
	UpdatedAt int64  `gorm:"autoUpdateTime:false"`
}

func (b *TripBlob) BeforeSave(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
