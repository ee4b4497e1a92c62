// Package view holds the page-level state machine: which of the three
// screens a visitor is on and which events move between them.
package view

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid view transition")

type View int

const (
	Home View = iota
	Post
	Write
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Post:
		return "post"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

type Event int

const (
	SelectPost Event = iota
	Compose
	Cancel
	Publish
	Back
	Brand
)

func (e Event) String() string {
	switch e {
	case SelectPost:
		return "select_post"
	case Compose:
		return "compose"
	case Cancel:
		return "cancel"
	case Publish:
		return "publish"
	case Back:
		return "back"
	case Brand:
		return "brand"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Transition returns the view reached from `from` on ev.
func Transition(from View, ev Event) (View, error) {
	if ev == Brand {
		return Home, nil
	}

	switch from {
	case Home:
		switch ev {
		case SelectPost:
			return Post, nil
		case Compose:
			return Write, nil
		}
	case Write:
		switch ev {
		case Cancel, Publish:
			return Home, nil
		}
	case Post:
		if ev == Back {
			return Home, nil
		}
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}
