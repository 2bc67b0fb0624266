package dao

import (
	"context"
	"errors"

	"github.com/Wa1tonGan/food-decider/decider/sources/psql/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocalEntryDAO struct {
	DB *gorm.DB
}

func NewLocalEntryDAO(db *gorm.DB) *LocalEntryDAO {
	return &LocalEntryDAO{DB: db}
}

// Get returns the stored value for (clientID, key), or nil if the key is absent.
func (dao *LocalEntryDAO) Get(ctx context.Context, clientID, key string) (*string, error) {
	var entry models.LocalEntry
	err := dao.DB.WithContext(ctx).
		Where("client_id = ? AND entry_key = ?", clientID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.Value, nil
}

// Set upserts the value for (clientID, key).
func (dao *LocalEntryDAO) Set(ctx context.Context, clientID, key, value string) error {
	entry := models.LocalEntry{ClientID: clientID, Key: key, Value: value}
	return dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Remove deletes one key; removing an absent key is not an error.
func (dao *LocalEntryDAO) Remove(ctx context.Context, clientID, key string) error {
	return dao.DB.WithContext(ctx).
		Where("client_id = ? AND entry_key = ?", clientID, key).
		Delete(&models.LocalEntry{}).Error
}

// Clear deletes every key of one client.
func (dao *LocalEntryDAO) Clear(ctx context.Context, clientID string) error {
	return dao.DB.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.LocalEntry{}).Error
}
