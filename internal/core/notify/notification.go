// Package notify manages short-lived on-screen messages (toasts).
//
// Each notification moves through Created → Displayed → Closing → Removed.
// Closing is entered by whichever comes first of the auto-close timer, a
// manual dismiss, or Handle.Close; the others become no-ops. Removal follows
// Closing after a fixed transition delay.
package notify

import (
	"fmt"
	"time"
)

// Type selects the notification's styling.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// State is a notification's lifecycle position.
type State int

const (
	StateCreated State = iota
	StateDisplayed
	StateClosing
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateDisplayed:
		return "displayed"
	case StateClosing:
		return "closing"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "created":
		*s = StateCreated
	case "displayed":
		*s = StateDisplayed
	case "closing":
		*s = StateClosing
	case "removed":
		*s = StateRemoved
	default:
		return fmt.Errorf("notify: unknown state %q", b)
	}
	return nil
}

const (
	DefaultDuration   = 3 * time.Second
	DefaultTransition = 300 * time.Millisecond
)

// Options control how a single notification behaves.
type Options struct {
	Duration  time.Duration `json:"-"`
	Closable  bool          `json:"closable"`
	ShowIcon  bool          `json:"show_icon"`
	AutoClose bool          `json:"auto_close"`
	Filled    bool          `json:"filled"`
}

// DefaultOptions returns the options applied before any overrides.
func DefaultOptions() Options {
	return Options{
		Duration:  DefaultDuration,
		Closable:  true,
		ShowIcon:  true,
		AutoClose: true,
	}
}

// Option overrides one default.
type Option func(*Options)

func WithDuration(d time.Duration) Option { return func(o *Options) { o.Duration = d } }
func WithClosable(v bool) Option          { return func(o *Options) { o.Closable = v } }
func WithIcon(v bool) Option              { return func(o *Options) { o.ShowIcon = v } }
func WithAutoClose(v bool) Option         { return func(o *Options) { o.AutoClose = v } }
func WithFilled(v bool) Option            { return func(o *Options) { o.Filled = v } }

// Notification is the renderable state of one message.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Content   string    `json:"content"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	// DurationMS mirrors Options.Duration for renderers.
	DurationMS int64 `json:"duration_ms"`
	Options
}
