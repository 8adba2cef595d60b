package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Handler processes a received frame.
type Handler func(f Frame) error

// Connection is the bot's side of the engine pipe: records arrive one per
// line on r, and each turn's placements are written as two lines on w.
type Connection struct {
	r        *bufio.Reader
	w        *bufio.Writer
	handlers map[FrameKind]Handler
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		r:        bufio.NewReaderSize(r, 1<<16),
		w:        bufio.NewWriter(w),
		handlers: make(map[FrameKind]Handler),
	}
}

func (c *Connection) RegisterHandler(kind FrameKind, handler Handler) {
	c.handlers[kind] = handler
}

// SubmitTurn writes the build list followed by the deploy list and flushes.
// The engine waits for both lines before it advances, so this must run
// exactly once per planning phase.
func (c *Connection) SubmitTurn(build, deploy []Command) error {
	if build == nil {
		build = []Command{}
	}
	if deploy == nil {
		deploy = []Command{}
	}
	for _, stack := range [][]Command{build, deploy} {
		payload, err := json.Marshal(stack)
		if err != nil {
			return fmt.Errorf("marshal commands: %w", err)
		}
		if _, err := c.w.Write(payload); err != nil {
			return fmt.Errorf("write commands: %w", err)
		}
		if err := c.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write commands: %w", err)
		}
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("flush commands: %w", err)
	}
	return nil
}

// ReadLoop blocks until the engine closes the pipe or the end-of-game frame
// has been handled. Handler errors are logged and the loop continues.
func (c *Connection) ReadLoop() {
	for {
		f, err := ReadFrame(c.r)
		if err != nil {
			slog.Info("engine read ended", "error", err)
			return
		}

		handler, ok := c.handlers[f.Kind]
		if !ok {
			slog.Warn("no handler for frame", "kind", f.Kind, "bytes", len(f.Raw))
		} else if err := handler(f); err != nil {
			slog.Error("handler error", "kind", f.Kind, "error", err)
		}

		if f.Kind == FrameEnd {
			return
		}
	}
}
