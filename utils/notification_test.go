package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationAutoClears(t *testing.T) {
	slot := NewNotificationSlot(30 * time.Millisecond)

	slot.Show("Account created successfully!")

	message, active := slot.Current()
	assert.True(t, active)
	assert.Equal(t, "Account created successfully!", message)

	time.Sleep(60 * time.Millisecond)

	_, active = slot.Current()
	assert.False(t, active)
}

func TestNotificationLastWriteWins(t *testing.T) {
	slot := NewNotificationSlot(time.Minute)

	slot.Show("first")
	slot.Show("second")

	message, active := slot.Current()
	assert.True(t, active)
	assert.Equal(t, "second", message)
}

// A write before expiry restarts the clock instead of queueing.
func TestNotificationOverwriteResetsTimer(t *testing.T) {
	slot := NewNotificationSlot(50 * time.Millisecond)

	slot.Show("first")
	time.Sleep(30 * time.Millisecond)
	slot.Show("second")
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first write, but only 30ms after the second
	message, active := slot.Current()
	assert.True(t, active)
	assert.Equal(t, "second", message)

	time.Sleep(40 * time.Millisecond)
	_, active = slot.Current()
	assert.False(t, active)
}

func TestNotificationClear(t *testing.T) {
	slot := NewNotificationSlot(time.Minute)

	slot.Show("going away")
	slot.Clear()

	_, active := slot.Current()
	assert.False(t, active)
}
