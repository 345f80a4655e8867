package dailymenu

import (
	"fmt"

	"github.com/keysaw7/MenuMaster-sub000/internal/apperr"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Event string

const EventPublish Event = "publish"

// published is terminal: nothing leaves it.
var transitions = map[Status]map[Event]Status{
	StatusDraft: {
		EventPublish: StatusPublished,
	},
}

// Next returns the state reached from `from` on ev.
func Next(from Status, ev Event) (Status, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return from, apperr.Conflict(fmt.Sprintf("cannot %s a %s daily menu", ev, from))
	}
	return to, nil
}

func (m *DailyMenu) Status() Status {
	if m.IsPublished {
		return StatusPublished
	}
	return StatusDraft
}

// Editable reports whether content changes are still allowed.
func (m *DailyMenu) Editable() bool {
	return m.Status() == StatusDraft
}
