package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Journal persists import run history: one row per run with its tally,
// one row per item outcome, and one row per sync event observed by the
// worker. SQLite backs local runs, Postgres shared environments.
type Journal struct {
	db *gorm.DB
}

type Run struct {
	ID         string `gorm:"primaryKey"`
	Mode       string
	StartedAt  time.Time
	FinishedAt *time.Time
	Succeeded  int
	Failed     int
	Skipped    int
}

type RunItem struct {
	ID        string `gorm:"primaryKey"`
	RunID     string
	Name      string
	Status    string
	Error     string
	CreatedAt time.Time
}

type SyncEvent struct {
	ID         string `gorm:"primaryKey"`
	Type       string
	ProductID  string
	Name       string
	OccurredAt time.Time
	ReceivedAt time.Time
}

func Open(databaseURL string) (*Journal, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		started_at TIMESTAMP,
		finished_at TIMESTAMP,
		succeeded INTEGER DEFAULT 0,
		failed INTEGER DEFAULT 0,
		skipped INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS run_items (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		name TEXT,
		status TEXT,
		error TEXT,
		created_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sync_events (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		product_id TEXT,
		name TEXT,
		occurred_at TIMESTAMP,
		received_at TIMESTAMP
	);
	`

	if err := db.Exec(createTablesSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Journal{db: db}, nil
}

// StartRun opens a run record; its tally is filled in by FinishRun.
func (j *Journal) StartRun(mode string) (*Run, error) {
	run := &Run{
		ID:        uuid.New().String(),
		Mode:      mode,
		StartedAt: time.Now(),
	}
	if err := j.db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

func (j *Journal) FinishRun(run *Run, succeeded, failed, skipped int) error {
	now := time.Now()
	run.FinishedAt = &now
	run.Succeeded = succeeded
	run.Failed = failed
	run.Skipped = skipped
	return j.db.Save(run).Error
}

func (j *Journal) RecordItem(runID, name, status, errMsg string) error {
	item := &RunItem{
		ID:        uuid.New().String(),
		RunID:     runID,
		Name:      name,
		Status:    status,
		Error:     errMsg,
		CreatedAt: time.Now(),
	}
	return j.db.Create(item).Error
}

func (j *Journal) RecordEvent(eventType, productID, name string, occurredAt time.Time) error {
	event := &SyncEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		ProductID:  productID,
		Name:       name,
		OccurredAt: occurredAt,
		ReceivedAt: time.Now(),
	}
	return j.db.Create(event).Error
}

func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
