package storage

import "time"

// RepositoryStatusModel is the GORM model for the latest snapshot
type RepositoryStatusModel struct {
	CreatedAt               time.Time
	LastUpdatedAt           time.Time  `gorm:"not null"`
	RootID                  string     `gorm:"primaryKey"`
	UncommittedChangesCount int        `gorm:"not null;default:0"`
	UncommittedChangesSince *time.Time `gorm:"default:null"`
	UnpushedCommitsCount    *int       `gorm:"default:null"`
	UnpushedCommitsSince    *time.Time `gorm:"default:null"`
	UpdatedAt               time.Time
}

// TableName specifies the table name for GORM
func (RepositoryStatusModel) TableName() string { return "repository_statuses" }

// ReminderModel is the GORM model for the reminder history
type ReminderModel struct {
	Action       string    `gorm:"not null;default:''"`
	CreatedAt    time.Time
	FiredAt      time.Time `gorm:"not null;index:idx_fired_at"`
	ID           string    `gorm:"primaryKey"`
	Message      string    `gorm:"not null"`
	OverdueRoots []string  `gorm:"serializer:json;type:text"`
	Style        string    `gorm:"not null;check:style IN ('notification','modal')"`
	Uncommitted  bool      `gorm:"not null;default:false"`
	Unpushed     bool      `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (ReminderModel) TableName() string { return "reminders" }
