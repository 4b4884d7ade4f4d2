package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned for actions outside the four legal moves.
var ErrUnknownAction = errors.New("unknown action")

// Action is a player's decision on their turn.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Key returns the single-letter shortcut for the action.
func (a Action) Key() string {
	switch a {
	case Hit:
		return "h"
	case Stand:
		return "s"
	case Double:
		return "d"
	case Split:
		return "t"
	default:
		return "?"
	}
}

// ParseAction accepts either the action name or its shortcut.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	case "d", "double":
		return Double, nil
	case "t", "split":
		return Split, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Allowed reports whether the action is legal given the current options.
func (a Action) Allowed(canDouble, canSplit bool) bool {
	switch a {
	case Hit, Stand:
		return true
	case Double:
		return canDouble
	case Split:
		return canSplit
	default:
		return false
	}
}

// LegalActions lists the actions available given the current options.
func LegalActions(canDouble, canSplit bool) []Action {
	actions := []Action{Hit, Stand}
	if canDouble {
		actions = append(actions, Double)
	}
	if canSplit {
		actions = append(actions, Split)
	}
	return actions
}
