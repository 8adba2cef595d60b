package ipc

import (
	"encoding/json"
	"fmt"
)

// Command is a single placement intent. The engine expects it as a
// positional array: [shorthand, x, y].
type Command struct {
	Shorthand string
	X         int
	Y         int
}

func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Shorthand, c.X, c.Y})
}

func (c *Command) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("command needs 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Shorthand); err != nil {
		return fmt.Errorf("command shorthand: %w", err)
	}
	if err := json.Unmarshal(raw[1], &c.X); err != nil {
		return fmt.Errorf("command x: %w", err)
	}
	if err := json.Unmarshal(raw[2], &c.Y); err != nil {
		return fmt.Errorf("command y: %w", err)
	}
	return nil
}
