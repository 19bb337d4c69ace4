package notify

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrUnknown     = errors.New("notification not found")
	ErrNotClosable = errors.New("notification is not closable")
)

// Observer is told about notifications entering and leaving the display.
type Observer interface {
	Shown(n Notification)
	Removed(n Notification)
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithScheduler replaces the wall-clock timer source.
func WithScheduler(s Scheduler) ManagerOption { return func(m *Manager) { m.sched = s } }

// WithTransition sets the delay between Closing and Removed.
func WithTransition(d time.Duration) ManagerOption { return func(m *Manager) { m.transition = d } }

// WithDefaults replaces the options every notification starts from.
func WithDefaults(o Options) ManagerOption { return func(m *Manager) { m.defaults = o } }

func WithObserver(o Observer) ManagerOption { return func(m *Manager) { m.observer = o } }

func WithClock(now func() time.Time) ManagerOption { return func(m *Manager) { m.now = now } }

// Manager owns the ordered sequence of active notifications.
type Manager struct {
	display    Display
	sched      Scheduler
	transition time.Duration
	defaults   Options
	observer   Observer
	now        func() time.Time
	log        zerolog.Logger

	mu      sync.Mutex
	active  []*Handle
	mounted bool
	closed  bool
}

// NewManager returns a Manager rendering on display.
func NewManager(display Display, log zerolog.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		display:    display,
		sched:      realScheduler{},
		transition: DefaultTransition,
		defaults:   DefaultOptions(),
		now:        time.Now,
		log:        log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle lets the creator of a notification close it early.
type Handle struct {
	m     *Manager
	n     Notification
	timer Timer
}

// ID returns the notification's identifier.
func (h *Handle) ID() string { return h.n.ID }

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	return h.n.State
}

// Close starts the closing transition. Calling it again, or after the
// notification was removed, does nothing.
func (h *Handle) Close() {
	h.m.beginClose(h, "closed")
}

func (m *Manager) Info(content string, opts ...Option) *Handle {
	return m.Show(TypeInfo, content, opts...)
}

func (m *Manager) Success(content string, opts ...Option) *Handle {
	return m.Show(TypeSuccess, content, opts...)
}

func (m *Manager) Warning(content string, opts ...Option) *Handle {
	return m.Show(TypeWarning, content, opts...)
}

func (m *Manager) Error(content string, opts ...Option) *Handle {
	return m.Show(TypeError, content, opts...)
}

// Show displays a notification and, when auto-close is on, schedules its
// dismissal after the configured duration.
func (m *Manager) Show(t Type, content string, opts ...Option) *Handle {
	o := m.defaults
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handle{m: m, n: Notification{
		ID:         uuid.NewString(),
		Type:       t,
		Content:    content,
		State:      StateCreated,
		CreatedAt:  m.now().UTC(),
		DurationMS: o.Duration.Milliseconds(),
		Options:    o,
	}}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		h.n.State = StateRemoved
		return h
	}

	m.active = append(m.active, h)
	if !m.mounted {
		m.display.Mount()
		m.mounted = true
	}
	m.display.Add(h.n)
	h.n.State = StateDisplayed

	if o.AutoClose && o.Duration > 0 {
		h.timer = m.sched.AfterFunc(o.Duration, func() { m.beginClose(h, "timeout") })
	}
	if m.observer != nil {
		m.observer.Shown(h.n)
	}

	m.log.Debug().Str("id", h.n.ID).Str("type", string(t)).Msg("notification shown")
	return h
}

// Dismiss is the manual close trigger of the rendered notification. Only
// closable notifications accept it.
func (m *Manager) Dismiss(id string) error {
	m.mu.Lock()
	var h *Handle
	for _, a := range m.active {
		if a.n.ID == id {
			h = a
			break
		}
	}
	if h == nil {
		m.mu.Unlock()
		return ErrUnknown
	}
	closable := h.n.Closable
	m.mu.Unlock()

	if !closable {
		return ErrNotClosable
	}
	m.beginClose(h, "dismissed")
	return nil
}

// Active returns the notifications currently on display, in display order.
func (m *Manager) Active() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Notification, 0, len(m.active))
	for _, h := range m.active {
		out = append(out, h.n)
	}
	return out
}

// Close removes every notification immediately and rejects new ones.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for _, h := range m.active {
		if h.timer != nil {
			h.timer.Stop()
		}
		h.n.State = StateRemoved
		m.display.Remove(h.n.ID)
		if m.observer != nil {
			m.observer.Removed(h.n)
		}
	}
	m.active = nil
	if m.mounted {
		m.display.Unmount()
		m.mounted = false
	}
}

func (m *Manager) beginClose(h *Handle, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.n.State != StateDisplayed {
		return
	}
	h.n.State = StateClosing
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = m.sched.AfterFunc(m.transition, func() { m.remove(h) })

	m.log.Debug().Str("id", h.n.ID).Str("reason", reason).Msg("notification closing")
}

func (m *Manager) remove(h *Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h.n.State != StateClosing {
		return
	}
	h.n.State = StateRemoved

	for i, a := range m.active {
		if a == h {
			m.active = append(m.active[:i], m.active[i+1:]...)
			break
		}
	}
	m.display.Remove(h.n.ID)
	if len(m.active) == 0 && m.mounted {
		m.display.Unmount()
		m.mounted = false
	}
	if m.observer != nil {
		m.observer.Removed(h.n)
	}
}
