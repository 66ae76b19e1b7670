// Package notify delivers short, transient messages to the operator: the
// terminal counterpart of toast notifications.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notifier shows a message to the operator. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Terminal prints styled one-line notifications to w.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[Level]lipgloss.Style
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w: w,
		styles: map[Level]lipgloss.Style{
			LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		},
	}
}

var marks = map[Level]string{
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelInfo:    "i",
}

func (t *Terminal) show(level Level, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, t.styles[level].Render(marks[level]+" "+msg))
}

func (t *Terminal) Success(msg string) { t.show(LevelSuccess, msg) }
func (t *Terminal) Error(msg string)   { t.show(LevelError, msg) }
func (t *Terminal) Info(msg string)    { t.show(LevelInfo, msg) }

// Message is one recorded notification.
type Message struct {
	Level Level
	Text  string
}

// Recorder keeps every notification in memory. Useful in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Text: msg})
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message, or the zero Message.
func (r *Recorder) Last() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return Message{}
	}
	return r.messages[len(r.messages)-1]
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
func (Discard) Info(string)    {}
