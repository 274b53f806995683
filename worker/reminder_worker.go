package worker

import (
	"context"
	"log"
	"time"

	"salesdesk/models"
	"salesdesk/store"
)

// Notifier is the delivery side of a reminder. *notify.Hub satisfies it.
type Notifier interface {
	Broadcast(n models.Notification)
}

// ReminderWorker scans the cached calendar and pushes a notification
// shortly before any call or meeting with its reminder flag set. Fired
// reminders are remembered until their start time passes, so a rescan
// never double-notifies and the set stays bounded on a long-running
// process.
type ReminderWorker struct {
	Calls    *store.CallStore
	Meetings *store.MeetingStore
	Hub      Notifier
	Logger   *log.Logger

	Interval time.Duration
	Lead     time.Duration

	fired map[string]time.Time
}

func NewReminderWorker(calls *store.CallStore, meetings *store.MeetingStore, hub Notifier, interval time.Duration, logger *log.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ReminderWorker{
		Calls:    calls,
		Meetings: meetings,
		Hub:      hub,
		Logger:   logger,
		Interval: interval,
		Lead:     15 * time.Minute,
		fired:    make(map[string]time.Time),
	}
}

func (rw *ReminderWorker) Start(ctx context.Context) {
	rw.Logger.Println("Reminder worker started")

	ticker := time.NewTicker(rw.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			rw.Logger.Println("Reminder worker shutting down...")
			return
		case <-ticker.C:
			rw.scan(time.Now())
		}
	}
}

func (rw *ReminderWorker) scan(now time.Time) {
	// Entries for events that already started can never fire again.
	for id, start := range rw.fired {
		if start.Before(now) {
			delete(rw.fired, id)
		}
	}

	for _, call := range rw.Calls.Snapshot().Calls {
		if !call.Reminder || call.Status != "scheduled" {
			continue
		}
		if rw.due(call.ID, call.StartTime, now) {
			rw.Hub.Broadcast(models.Notification{
				Type:       "call_reminder",
				Title:      "Upcoming call: " + call.Title,
				Body:       "Starts at " + call.StartTime.Format(time.Kitchen),
				ResourceID: call.ID,
			})
		}
	}

	for _, meeting := range rw.Meetings.Snapshot().Meetings {
		if !meeting.Reminder || meeting.Status != "scheduled" {
			continue
		}
		if rw.due(meeting.ID, meeting.StartTime, now) {
			rw.Hub.Broadcast(models.Notification{
				Type:       "meeting_reminder",
				Title:      "Upcoming meeting: " + meeting.Title,
				Body:       "Starts at " + meeting.StartTime.Format(time.Kitchen),
				ResourceID: meeting.ID,
			})
		}
	}
}

// due reports whether the event starts within the lead window and has
// not fired yet. Past events never fire.
func (rw *ReminderWorker) due(id string, start time.Time, now time.Time) bool {
	if start.Before(now) || start.Sub(now) > rw.Lead {
		return false
	}
	if _, ok := rw.fired[id]; ok {
		return false
	}
	rw.fired[id] = start
	return true
}
