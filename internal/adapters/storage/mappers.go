package storage

import (
	"gitnag/internal/domain"
)

// statusModelToDomain converts a RepositoryStatusModel (GORM) to domain.RepositoryStatus
func statusModelToDomain(m RepositoryStatusModel) domain.RepositoryStatus {
	return domain.RepositoryStatus{
		LastUpdatedAt:           m.LastUpdatedAt,
		RootID:                  m.RootID,
		UncommittedChangesCount: m.UncommittedChangesCount,
		UncommittedChangesSince: m.UncommittedChangesSince,
		UnpushedCommitsCount:    m.UnpushedCommitsCount,
		UnpushedCommitsSince:    m.UnpushedCommitsSince,
	}
}

// domainToStatusModel converts a domain.RepositoryStatus to RepositoryStatusModel (GORM)
func domainToStatusModel(s domain.RepositoryStatus) RepositoryStatusModel {
	return RepositoryStatusModel{
		LastUpdatedAt:           s.LastUpdatedAt,
		RootID:                  s.RootID,
		UncommittedChangesCount: s.UncommittedChangesCount,
		UncommittedChangesSince: s.UncommittedChangesSince,
		UnpushedCommitsCount:    s.UnpushedCommitsCount,
		UnpushedCommitsSince:    s.UnpushedCommitsSince,
	}
}

// reminderModelToDomain converts a ReminderModel (GORM) to domain.Reminder
func reminderModelToDomain(m ReminderModel) domain.Reminder {
	return domain.Reminder{
		Action:       domain.NotificationAction(m.Action),
		FiredAt:      m.FiredAt,
		ID:           m.ID,
		Message:      m.Message,
		OverdueRoots: m.OverdueRoots,
		Style:        domain.NotificationStyle(m.Style),
		Uncommitted:  m.Uncommitted,
		Unpushed:     m.Unpushed,
	}
}

// domainToReminderModel converts a domain.Reminder to ReminderModel (GORM)
func domainToReminderModel(r domain.Reminder) ReminderModel {
	return ReminderModel{
		Action:       string(r.Action),
		FiredAt:      r.FiredAt,
		ID:           r.ID,
		Message:      r.Message,
		OverdueRoots: r.OverdueRoots,
		Style:        string(r.Style),
		Uncommitted:  r.Uncommitted,
		Unpushed:     r.Unpushed,
	}
}
