package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DocumentKey is the fixed key the planning document is stored under.
// There is exactly one document per installation.
const DocumentKey = "bellanote-app-data"

// Document is the single database row holding the serialized planning data.
type Document struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("bellanote:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("bellanote:after_create", persistCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("bellanote:after_update", persistCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("bellanote:after_delete", persistCallback)
	if err != nil {
		return err
	}

	err = db.AutoMigrate(Document{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback handles unspecified read errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func queryCallback(db *gorm.DB) {
	if db.Error == nil || errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	if isDatabaseError(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// persistCallback replaces write errors with the persistence sentinel so
// that callers can tell a failed save from every other failure.
func persistCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isDatabaseError(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrPersistence
	}
}

// isDatabaseError reports whether an error comes from the database layer
// itself rather than from application logic.
//
// "sql: database is closed" is hard-coded in the sql module, see
// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
func isDatabaseError(err error) bool {
	return err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{})
}

// LoadAppData reads the planning document from the database. A missing
// document is initialized with defaults, an existing one gets missing
// top-level fields backfilled and is written back when anything changed.
func LoadAppData() (AppData, error) {
	var doc Document
	err := DB.First(&doc, "key = ?", DocumentKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		data := DefaultAppData()
		return data, SaveAppData(data)
	}
	if err != nil {
		return AppData{}, err
	}

	var data AppData
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return AppData{}, fmt.Errorf("%w: %s", ErrDocumentCorrupt, err)
	}

	if data.backfill() {
		if err := SaveAppData(data); err != nil {
			return AppData{}, err
		}
	}

	return data, nil
}

// SaveAppData writes the planning document to the database.
func SaveAppData(data AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	return DB.Save(&Document{Key: DocumentKey, Data: raw}).Error
}

// DeleteAppData removes the planning document from the database.
func DeleteAppData() error {
	return DB.Delete(&Document{Key: DocumentKey}).Error
}
