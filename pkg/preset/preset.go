/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/starcanvas
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package preset persists named scenes — canvas dimensions, background, view transform, and spot
// list — to a local SQLite file via gorm, keyed by a ULID primary key. Neither gorm, its SQLite
// driver, nor oklog/ulid are exercised anywhere in the teacher's own retrieved source (all three
// are declared in go.mod only); this package gives them the home the teacher's codebase never did.
package preset

/*****************************************************************************************************************/

import (
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/observerly/starcanvas/pkg/spot"
	"github.com/observerly/starcanvas/pkg/transform"
)

/*****************************************************************************************************************/

// ErrNotFound is returned by Load for a name with no stored preset.
var ErrNotFound = errors.New("preset: no such preset")

/*****************************************************************************************************************/

// Scene is the caller-facing snapshot of everything a preset persists.
type Scene struct {
	Width, Height int
	Background    uint16
	View          transform.Transform
	Spots         []spot.Record
}

/*****************************************************************************************************************/

// model is the gorm-mapped row; View and Spots are stored as JSON text columns rather than a
// normalised schema, since a Scene is always read or written whole.
type model struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex"`
	Width      int
	Height     int
	Background uint16
	ViewJSON   string
	SpotsJSON  string
	CreatedAt  time.Time
}

/*****************************************************************************************************************/

// Store is a SQLite-backed preset repository.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// Open opens (creating if necessary) a SQLite database at path and migrates the preset schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

/*****************************************************************************************************************/

func newULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

/*****************************************************************************************************************/

// Save upserts a named scene: an existing preset of the same name is overwritten in place,
// keeping its original ULID.
func (s *Store) Save(name string, scene Scene) error {
	viewJSON, err := json.Marshal(scene.View)
	if err != nil {
		return err
	}

	spotsJSON, err := json.Marshal(scene.Spots)
	if err != nil {
		return err
	}

	var existing model

	result := s.db.Where("name = ?", name).First(&existing)

	row := model{
		ID:         existing.ID,
		Name:       name,
		Width:      scene.Width,
		Height:     scene.Height,
		Background: scene.Background,
		ViewJSON:   string(viewJSON),
		SpotsJSON:  string(spotsJSON),
		CreatedAt:  time.Now(),
	}

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		row.ID = newULID()
		return s.db.Create(&row).Error
	}

	if result.Error != nil {
		return result.Error
	}

	return s.db.Save(&row).Error
}

/*****************************************************************************************************************/

// Load retrieves a named scene, or ErrNotFound if none exists.
func (s *Store) Load(name string) (Scene, error) {
	var row model

	result := s.db.Where("name = ?", name).First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Scene{}, ErrNotFound
	}

	if result.Error != nil {
		return Scene{}, result.Error
	}

	var scene Scene
	scene.Width = row.Width
	scene.Height = row.Height
	scene.Background = row.Background

	if err := json.Unmarshal([]byte(row.ViewJSON), &scene.View); err != nil {
		return Scene{}, err
	}

	if err := json.Unmarshal([]byte(row.SpotsJSON), &scene.Spots); err != nil {
		return Scene{}, err
	}

	return scene, nil
}

/*****************************************************************************************************************/

// List returns the names of every stored preset, in no particular order.
func (s *Store) List() ([]string, error) {
	var rows []model

	if err := s.db.Select("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}

	return names, nil
}

/*****************************************************************************************************************/
