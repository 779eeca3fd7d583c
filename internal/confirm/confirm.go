// Package confirm implements the yes/no gate placed in front of destructive
// operations.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// State is the gate's position.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Gate is a two-state modal: Closed -> Open -> Closed.
// It leaves Open only through Cancel or Confirm.
type Gate struct {
	Title   string
	Message string

	state State
}

// New creates a closed gate.
func New(title, message string) *Gate {
	return &Gate{Title: title, Message: message}
}

// State returns the current state.
func (g *Gate) State() State {
	return g.state
}

// IsOpen reports whether the gate is waiting for an answer.
func (g *Gate) IsOpen() bool {
	return g.state == Open
}

// Open moves the gate to Open. Reports false if it was already open.
func (g *Gate) Open() bool {
	if g.state == Open {
		return false
	}
	g.state = Open
	return true
}

// Cancel closes an open gate without acting.
func (g *Gate) Cancel() {
	g.state = Closed
}

// Confirm runs action and closes the gate. It does nothing while closed.
func (g *Gate) Confirm(action func()) bool {
	if g.state != Open {
		return false
	}
	if action != nil {
		action()
	}
	g.state = Closed
	return true
}

// Prompt writes the gate's dialog text to w.
func (g *Gate) Prompt(w io.Writer) {
	fmt.Fprintln(w, g.Title)
	fmt.Fprintf(w, "%s [y/N] ", g.Message)
}

// IsYes reports whether answer confirms: "y" or "yes", case-insensitive.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Ask opens g, prompts on w and reads one line from r. Confirm runs action;
// any other answer, or EOF, cancels. Reports whether action ran.
func Ask(r io.Reader, w io.Writer, g *Gate, action func()) (bool, error) {
	g.Open()
	g.Prompt(w)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		g.Cancel()
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	fmt.Fprintln(w)

	if !IsYes(line) {
		g.Cancel()
		return false, nil
	}
	return g.Confirm(action), nil
}
