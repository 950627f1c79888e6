package activity

import (
	"sync"
	"time"

	"github.com/goto/approvalflow/domain"
)

const DefaultCapacity = 20

var TimeNow = time.Now

// Log is a bounded, newest-first list of activity events. The oldest entry is evicted on overflow.
type Log struct {
	mu       sync.RWMutex
	capacity int
	events   []domain.ActivityEvent
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		events:   make([]domain.ActivityEvent, 0, capacity),
	}
}

// Record adds a new event at the head of the log.
func (l *Log) Record(message, category string) domain.ActivityEvent {
	event := domain.ActivityEvent{
		Message:   message,
		Category:  category,
		Timestamp: TimeNow(),
	}
	l.Add(event)
	return event
}

func (l *Log) Add(event domain.ActivityEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.events) < l.capacity {
		l.events = append(l.events, domain.ActivityEvent{})
	}
	copy(l.events[1:], l.events[:len(l.events)-1])
	l.events[0] = event
}

// List returns a snapshot of the events, newest first.
func (l *Log) List() []domain.ActivityEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := make([]domain.ActivityEvent, len(l.events))
	copy(events, l.events)
	return events
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
