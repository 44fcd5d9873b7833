package models

import (
	"gorm.io/datatypes"
)

// Collection names as they exist at rest. "song" and "images" are the
// historical names the mobile clients already depend on.
const (
	CollectionUsers    = "users"
	CollectionTracks   = "song"
	CollectionFeedback = "images"
)

// Document is the storage row backing every collection: one JSONB payload
// per (collection, key) pair.
type Document struct {
	Collection string         `gorm:"primaryKey;type:text"       json:"collection"`
	DocKey     string         `gorm:"primaryKey;type:text"       json:"key"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null"        json:"data"`
}

func (Document) TableName() string {
	return "documents"
}
