// Package handler chains key handlers so the first one to claim a key wins.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler passes on the key.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that claim a key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled claims the key with cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// From adapts a (handled, cmd) pair.
func From(handled bool, cmd tea.Cmd) Result {
	return Result{Handled: handled, Cmd: cmd}
}

// Handler attempts to handle a key.
type Handler func(tea.KeyMsg) Result

// Chain offers msg to each handler in order until one claims it.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
