package domain

// NotificationStyle selects how a reminder is presented
type NotificationStyle string

const (
	StyleModal        NotificationStyle = "modal"
	StyleNotification NotificationStyle = "notification"
)

// NotificationAction is the user's answer to a reminder
type NotificationAction string

const (
	ActionNone        NotificationAction = ""
	ActionOpenGitView NotificationAction = "Open Git View"
	ActionSnooze      NotificationAction = "Snooze"
)

// NotificationActions are offered with every reminder, in display order
var NotificationActions = []NotificationAction{ActionOpenGitView, ActionSnooze}

// Reminder messages, one per overdue combination
const (
	MessageCombined    = "You haven't committed your changes and pushed commits in a while."
	MessageUncommitted = "You haven't committed your changes in a while."
	MessageUnpushed    = "You haven't pushed commits in a while."
)

// Notification is what the presenter shows to the user
type Notification struct {
	Actions []NotificationAction
	Detail  string
	Message string
	Sound   string // Sound event name (empty for silent)
	Style   NotificationStyle
	Title   string
}

// ParseNotificationAction maps a label or action key back to an action
func ParseNotificationAction(s string) NotificationAction {
	switch s {
	case string(ActionOpenGitView), "open":
		return ActionOpenGitView
	case string(ActionSnooze), "snooze":
		return ActionSnooze
	default:
		return ActionNone
	}
}

// Sound events played with a reminder
const (
	SoundEventCombined    = "combined"
	SoundEventUncommitted = "uncommitted"
	SoundEventUnpushed    = "unpushed"
)
