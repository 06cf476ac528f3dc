package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/tracker"
)

const (
	BreweryDataKey  = "breweryData"
	SyncSettingsKey = "syncSettings"
)

var ErrValueNotFound = errors.New("no value stored")

// CollectionRepository is what the tracker needs from its storage: the last
// saved collection and the sync settings.
type CollectionRepository interface {
	LoadBreweries(ctx context.Context, raters []string) ([]*model.Brewery, error)
	SaveBreweries(ctx context.Context, breweries []*model.Brewery) error
	LoadSyncSettings(ctx context.Context) (*model.SyncSettings, error)
	SaveSyncSettings(ctx context.Context, settings model.SyncSettings) error
}

func (r *Repository) GetValue(ctx context.Context, key string) (string, error) {
	var stored model.StoredValue

	result := r.DB.WithContext(ctx).Where("key = ?", key).First(&stored)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrValueNotFound
		}

		r.Logger.Error("error reading stored value", zap.String("key", key), zap.Error(result.Error))

		return "", result.Error
	}

	return stored.Value, nil
}

func (r *Repository) SetValue(ctx context.Context, key string, value string) error {
	stored := model.StoredValue{Key: key, Value: value}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&stored)
	if result.Error != nil {
		r.Logger.Error("error writing stored value", zap.String("key", key), zap.Error(result.Error))

		return result.Error
	}

	return nil
}

// LoadBreweries returns the saved collection. Corrupt content is reported as
// a tracker.FormatError.
func (r *Repository) LoadBreweries(ctx context.Context, raters []string) ([]*model.Brewery, error) {
	value, err := r.GetValue(ctx, BreweryDataKey)
	if err != nil {
		return nil, err
	}

	return tracker.Decode([]byte(value), raters)
}

func (r *Repository) SaveBreweries(ctx context.Context, breweries []*model.Brewery) error {
	var buffer bytes.Buffer

	if err := tracker.Export(&buffer, breweries); err != nil {
		return err
	}

	return r.SetValue(ctx, BreweryDataKey, buffer.String())
}

func (r *Repository) LoadSyncSettings(ctx context.Context) (*model.SyncSettings, error) {
	value, err := r.GetValue(ctx, SyncSettingsKey)
	if err != nil {
		return nil, err
	}

	var settings model.SyncSettings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *Repository) SaveSyncSettings(ctx context.Context, settings model.SyncSettings) error {
	if settings.LastSyncTime != nil {
		lastSync := settings.LastSyncTime.UTC().Truncate(time.Millisecond)
		settings.LastSyncTime = &lastSync
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return r.SetValue(ctx, SyncSettingsKey, string(data))
}
