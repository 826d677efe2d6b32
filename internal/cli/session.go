package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/situs/internal/command"
	"github.com/idilsaglam/situs/internal/model"
	"github.com/idilsaglam/situs/internal/parser"
	"github.com/idilsaglam/situs/internal/ui"
)

// Saver persists the whole collection.
type Saver interface {
	Save(items []model.Ingredient) error
}

// Session runs one line at a time: parse, execute, save when the
// collection changed.
type Session struct {
	state *command.State
	store Saver
	log   logrus.FieldLogger
}

func NewSession(state *command.State, store Saver, log logrus.FieldLogger) *Session {
	return &Session{state: state, store: store, log: log}
}

func (s *Session) State() *command.State { return s.state }

// Reply is the outcome of one input line. Done marks a change that took
// effect: the collection was modified or a threshold was set.
type Reply struct {
	Text string
	Err  error
	Exit bool
	Done bool
}

// Handle trims and lower-cases line before parsing, like the original
// prompt did. Exit saves before returning.
func (s *Session) Handle(line string) Reply {
	line = strings.ToLower(strings.TrimSpace(line))

	if parser.IsExit(line) {
		if err := s.save(); err != nil {
			return Reply{Err: err, Exit: true}
		}
		return Reply{Exit: true}
	}

	cmd, err := parser.Parse(line)
	if err != nil {
		s.log.WithField("input", line).WithError(err).Debug("rejected input")
		return Reply{Err: err}
	}
	version := s.state.Inventory.Version()
	out, err := command.Execute(s.state, cmd)
	if err != nil {
		return Reply{Err: err}
	}
	_, isSet := cmd.(command.SetThreshold)
	done := isSet || s.state.Inventory.Version() != version
	if command.Mutates(cmd) {
		if err := s.save(); err != nil {
			return Reply{Text: out, Err: err}
		}
	}
	return Reply{Text: out, Done: done}
}

func (s *Session) save() error {
	if err := s.store.Save(s.state.Inventory.Items()); err != nil {
		s.log.WithError(err).Error("save failed")
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Render frames the reply for display. Errors go below any output.
func (r Reply) Render() string {
	var parts []string
	switch {
	case r.Text == "":
	case r.Done && r.Err == nil:
		parts = append(parts, ui.OK(r.Text))
	default:
		parts = append(parts, r.Text)
	}
	if r.Err != nil {
		parts = append(parts, ui.Fail(r.Err.Error()))
	}
	if len(parts) == 0 {
		return ""
	}
	return ui.Panel(strings.Join(parts, "\n"))
}
