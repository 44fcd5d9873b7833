package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/raj2411/MusicPlayerBackend/internal/models"
	logger "github.com/raj2411/MusicPlayerBackend/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDocumentNotFound is returned by UpdateField when the target document
// does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore is the contract the repositories depend on: whole-document
// reads and writes plus a top-level partial merge, over named collections.
// All methods are synchronous and may fail with a storage error.
type DocumentStore interface {
	// Get unmarshals the document into out and reports whether it exists.
	Get(ctx context.Context, collection, key string, out any) (bool, error)

	// Set writes the full document, overwriting any existing one.
	Set(ctx context.Context, collection, key string, doc any) error

	// UpdateField replaces a single top-level field of an existing
	// document. Returns ErrDocumentNotFound if the document is absent.
	UpdateField(ctx context.Context, collection, key, field string, value any) error
}

type documentStore struct {
	sql *gorm.DB
	log logger.Logger
}

func NewDocumentStore(sql *gorm.DB) DocumentStore {
	return &documentStore{
		sql: sql,
		log: logger.New("documentStore"),
	}
}

func (s *documentStore) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	log := s.log.Function("Get")

	var row models.Document
	err := s.sql.WithContext(ctx).
		Where("collection = ? AND doc_key = ?", collection, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, log.Err("failed to load document", err, "collection", collection, "key", key)
	}

	if err := json.Unmarshal(row.Data, out); err != nil {
		return false, log.Err("failed to decode document", err, "collection", collection, "key", key)
	}

	return true, nil
}

func (s *documentStore) Set(ctx context.Context, collection, key string, doc any) error {
	log := s.log.Function("Set")

	data, err := json.Marshal(doc)
	if err != nil {
		return log.Err("failed to encode document", err, "collection", collection, "key", key)
	}

	row := models.Document{
		Collection: collection,
		DocKey:     key,
		Data:       data,
	}

	err = s.sql.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&row).Error
	if err != nil {
		return log.Err("failed to write document", err, "collection", collection, "key", key)
	}

	return nil
}

func (s *documentStore) UpdateField(
	ctx context.Context,
	collection, key, field string,
	value any,
) error {
	log := s.log.Function("UpdateField")

	data, err := json.Marshal(value)
	if err != nil {
		return log.Err("failed to encode field value", err, "collection", collection, "key", key)
	}

	result := s.sql.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ? AND doc_key = ?", collection, key).
		Update("data", gorm.Expr(
			"jsonb_set(data, ?::text[], ?::jsonb)",
			fmt.Sprintf("{%s}", field),
			string(data),
		))
	if result.Error != nil {
		return log.Err("failed to update document field", result.Error,
			"collection", collection, "key", key, "field", field)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%s/%s: %w", collection, key, ErrDocumentNotFound)
	}

	return nil
}
