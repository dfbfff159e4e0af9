// Package router keeps the screen stack behind the app shell. Home sits
// at the bottom; practice, chat, profile, and the rest are pushed on
// top and popped off on esc.
package router

import (
	"github.com/mentorlabs/mentor/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to open a screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to close the current screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the current screen in place.
// The practice screen uses it to hand over to the session summary
// without leaving practice on the stack behind it.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is the screen stack.
type Router struct {
	stack []screen.Screen
}

// New creates a Router rooted at the given screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int {
	return len(r.stack) - 1
}

// Push opens a screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the current screen. The root screen never pops; esc on
// home does nothing.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the current screen for s and runs s.Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[r.top()] = s
	return s.Init()
}

// Active is the screen currently receiving input.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth reports how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update consumes navigation messages itself and forwards everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[r.top()] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
