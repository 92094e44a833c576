package orm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/va6996/dateaware/holiday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HolidayCache stores one year of holiday records as a JSON blob
type HolidayCache struct {
	Year      int    `gorm:"primaryKey;autoIncrement:false"`
	Data      []byte // JSON object keyed by ISO date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetCacheEntry retrieves the cached row for year
func GetCacheEntry(db *gorm.DB, year int) (*HolidayCache, error) {
	var entry HolidayCache
	if err := db.Where("year = ?", year).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetCacheEntry upserts the row for year
func SetCacheEntry(db *gorm.DB, year int, data []byte) error {
	entry := HolidayCache{
		Year: year,
		Data: data,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&entry).Error
}

// HolidayStore is a holiday.Store backed by a SQL table
type HolidayStore struct {
	db *gorm.DB
}

var _ holiday.Store = (*HolidayStore)(nil)

// NewHolidayStore migrates the cache table and returns the store
func NewHolidayStore(db *gorm.DB) (*HolidayStore, error) {
	if err := db.AutoMigrate(&HolidayCache{}); err != nil {
		return nil, fmt.Errorf("failed to migrate holiday cache: %w", err)
	}
	return &HolidayStore{db: db}, nil
}

// Load implements holiday.Store
func (s *HolidayStore) Load(ctx context.Context, year int) (holiday.Map, error) {
	entry, err := GetCacheEntry(s.db.WithContext(ctx), year)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, holiday.ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday cache: %w", err)
	}

	var m holiday.Map
	if err := json.Unmarshal(entry.Data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse cached holidays for %d: %w", year, err)
	}
	return m, nil
}

// Save implements holiday.Store. The upsert is a single statement, so a
// reader sees either the previous row or the new one.
func (s *HolidayStore) Save(ctx context.Context, year int, m holiday.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal holiday map: %w", err)
	}
	if err := SetCacheEntry(s.db.WithContext(ctx), year, data); err != nil {
		return fmt.Errorf("failed to store holiday cache: %w", err)
	}
	return nil
}
