package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gitnag/internal/config"
	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.StateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the gitnag logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("GITNAG_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the state database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The daemon writes while check/status/history read
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RepositoryStatusModel{}, &ReminderModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReplaceSnapshot implements SnapshotWriter.ReplaceSnapshot
func (r *SQLiteRepository) ReplaceSnapshot(ctx context.Context, statuses []domain.RepositoryStatus) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			keep := make([]string, 0, len(statuses))
			for _, s := range statuses {
				model := domainToStatusModel(s)
				if err := tx.Save(&model).Error; err != nil {
					return fmt.Errorf("failed to save status for %s: %w", s.RootID, err)
				}
				keep = append(keep, s.RootID)
			}

			remove := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
			if len(keep) > 0 {
				remove = remove.Where("root_id NOT IN ?", keep)
			}
			if err := remove.Delete(&RepositoryStatusModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete stale statuses: %w", err)
			}

			return nil
		})
	}, maxRetries)
}

// ListSnapshot implements SnapshotReader.ListSnapshot
func (r *SQLiteRepository) ListSnapshot(ctx context.Context) ([]domain.RepositoryStatus, error) {
	var models []RepositoryStatusModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("root_id").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]domain.RepositoryStatus, 0, len(models))
	for _, m := range models {
		statuses = append(statuses, statusModelToDomain(m))
	}
	return statuses, nil
}

// RecordReminder implements ReminderRecorder.RecordReminder
func (r *SQLiteRepository) RecordReminder(ctx context.Context, reminder domain.Reminder) error {
	model := domainToReminderModel(reminder)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, maxRetries)
}

// ListReminders implements ReminderHistory.ListReminders
func (r *SQLiteRepository) ListReminders(ctx context.Context, limit int) ([]domain.Reminder, error) {
	var models []ReminderModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("fired_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	reminders := make([]domain.Reminder, 0, len(models))
	for _, m := range models {
		reminders = append(reminders, reminderModelToDomain(m))
	}
	return reminders, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
