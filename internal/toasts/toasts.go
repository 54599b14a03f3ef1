package toasts

import (
	"sync"
	"time"

	model "auction-house/internal/models"
	"auction-house/utils"
)

// maxRetained caps how many toasts a feed keeps; pushing past the cap
// drops the oldest first.
const maxRetained = 5

// DefaultTTL is how long a toast lives before auto-dismissal.
const DefaultTTL = 5 * time.Second

// Feed is a bounded buffer of transient messages for one session. Every
// toast carries its own expiry timer; timers are cancelled on dismissal
// and when the feed closes, so nothing fires after logout.
type Feed struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []model.ToastMessage
	timers map[string]*time.Timer
	closed bool
}

// NewFeed creates a feed with the given time-to-live per toast.
func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Feed{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// Push adds a toast, dropping the oldest if the feed is full.
func (f *Feed) Push(message string, toastType model.ToastType) model.ToastMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	toast := model.ToastMessage{
		ID:      utils.GenerateID(),
		Message: message,
		Type:    toastType,
	}
	if f.closed {
		return toast
	}

	if len(f.toasts) >= maxRetained {
		oldest := f.toasts[0]
		f.toasts = f.toasts[1:]
		f.stopTimer(oldest.ID)
	}
	f.toasts = append(f.toasts, toast)
	f.timers[toast.ID] = time.AfterFunc(f.ttl, func() {
		f.Dismiss(toast.ID)
	})

	return toast
}

// Dismiss removes a toast by id. Unknown ids are ignored.
func (f *Feed) Dismiss(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, toast := range f.toasts {
		if toast.ID == id {
			f.toasts = append(f.toasts[:i], f.toasts[i+1:]...)
			break
		}
	}
	f.stopTimer(id)
}

// List returns the live toasts, oldest first.
func (f *Feed) List() []model.ToastMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ToastMessage(nil), f.toasts...)
}

// Close cancels all pending timers and drops remaining toasts.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	for id := range f.timers {
		f.timers[id].Stop()
		delete(f.timers, id)
	}
	f.toasts = nil
}

func (f *Feed) stopTimer(id string) {
	if timer, ok := f.timers[id]; ok {
		timer.Stop()
		delete(f.timers, id)
	}
}
