package engine

type NotificationKind string

const (
	NotificationAchievement NotificationKind = "achievement"
	NotificationStreak      NotificationKind = "streak"
	NotificationMilestone   NotificationKind = "milestone"
)

// Notification is a fire-and-forget event the engine emits when a reward
// is dispensed or an achievement unlocks. The engine never consumes a
// return value from the notifier.
type Notification struct {
	Kind        NotificationKind
	Icon        string
	Title       string
	Detail      string
	Coins       int
	SkillPoints int
}

type Notifier interface {
	Notify(n Notification)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
