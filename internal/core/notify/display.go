package notify

import (
	"time"

	"github.com/rs/zerolog"
)

// Display is the surface notifications are rendered on. The manager mounts
// it before the first notification and unmounts it once the last one is
// removed. Implementations must not call back into the Manager.
type Display interface {
	Mount()
	Unmount()
	Add(n Notification)
	Remove(id string)
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// LogDisplay renders notifications as log lines on the portal console.
type LogDisplay struct {
	log zerolog.Logger
}

func NewLogDisplay(log zerolog.Logger) *LogDisplay {
	return &LogDisplay{log: log}
}

func (d *LogDisplay) Mount()   { d.log.Debug().Msg("notification container mounted") }
func (d *LogDisplay) Unmount() { d.log.Debug().Msg("notification container unmounted") }

func (d *LogDisplay) Add(n Notification) {
	var ev *zerolog.Event
	switch n.Type {
	case TypeError:
		ev = d.log.Error()
	case TypeWarning:
		ev = d.log.Warn()
	default:
		ev = d.log.Info()
	}
	ev.Str("id", n.ID).Str("type", string(n.Type)).Msg(n.Content)
}

func (d *LogDisplay) Remove(id string) {
	d.log.Debug().Str("id", id).Msg("notification removed")
}
