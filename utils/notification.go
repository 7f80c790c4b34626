package utils

import (
	"cybercourse/config"
	"sync"
	"time"
)

// NotificationSlot is a single-slot, last-write-wins message holder.
// Every write restarts the expiry timer; there is no queue, a write
// before expiry simply replaces the message and its deadline.
type NotificationSlot struct {
	mu      sync.Mutex
	message string
	ttl     time.Duration
	timer   *time.Timer
	seq     uint64 // guards against an already-fired timer clearing a newer write
}

func NewNotificationSlot(ttl time.Duration) *NotificationSlot {
	return &NotificationSlot{ttl: ttl}
}

// Show replaces the current message and reschedules the auto-clear.
func (n *NotificationSlot) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = message
	n.seq++

	if n.timer != nil {
		n.timer.Stop()
	}
	seq := n.seq
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(seq) })
}

// Current returns the message still on display, if any.
func (n *NotificationSlot) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.message != ""
}

// Clear empties the slot immediately.
func (n *NotificationSlot) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = ""
	n.seq++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *NotificationSlot) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// A newer write owns the slot now
	if n.seq != seq {
		return
	}
	n.message = ""
	n.timer = nil
}

// Notifications is the process-wide slot the handlers write user-facing
// outcomes to.
var Notifications *NotificationSlot

// InitNotifications sets up the global slot from config.
func InitNotifications() {
	Notifications = NewNotificationSlot(time.Duration(config.AppConfig.NotificationTTL) * time.Second)
}

// Notify writes to the global slot when it has been initialized.
func Notify(message string) {
	if Notifications != nil {
		Notifications.Show(message)
	}
}
