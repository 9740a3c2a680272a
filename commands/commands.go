package commands

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

type FuncCommand struct {
	name string
	fn   func(ctx context.Context) error
}

func NewFuncCommand(name string, fn func(ctx context.Context) error) FuncCommand {
	return FuncCommand{name: name, fn: fn}
}

func (c FuncCommand) Name() string                      { return c.name }
func (c FuncCommand) Execute(ctx context.Context) error { return c.fn(ctx) }

// TimedCommand decorates a command with duration reporting.
type TimedCommand struct {
	inner Command
	log   *logrus.Logger
}

func NewTimed(inner Command, log *logrus.Logger) TimedCommand {
	return TimedCommand{inner: inner, log: log}
}

func (t TimedCommand) Name() string { return t.inner.Name() }

func (t TimedCommand) Execute(ctx context.Context) error {
	start := time.Now()
	err := t.inner.Execute(ctx)
	entry := t.log.WithFields(logrus.Fields{
		"command":  t.inner.Name(),
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("command failed")
		return err
	}
	entry.Info("command finished")
	return nil
}
