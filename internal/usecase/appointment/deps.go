package appointment

import (
	"github.com/veloura/salon-scheduler/internal/audit"
	"github.com/veloura/salon-scheduler/internal/events"
)

// Collaborators the use cases fan out to after the write commits. All
// of them are fire-and-forget; none can fail a booking.

type Notifier interface {
	Notify(userID uint, title, body string)
	NotifyAdmins(title, body string)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type EventPublisher interface {
	Publish(ev events.Event)
}
