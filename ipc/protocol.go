package ipc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// FrameKind classifies a line received from the engine.
type FrameKind int

const (
	FrameUnknown FrameKind = iota
	FrameConfig
	FrameTurn   // start of a planning phase
	FrameAction // one frame of the action phase, observation only
	FrameEnd
)

func (k FrameKind) String() string {
	switch k {
	case FrameConfig:
		return "config"
	case FrameTurn:
		return "turn"
	case FrameAction:
		return "action"
	case FrameEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Frame is one raw JSON record from the engine. Raw is decoded lazily by the
// handler because action frames are large and most of their content is unused.
type Frame struct {
	Kind FrameKind
	Raw  []byte
}

// ClassifyFrame inspects a record without fully decoding it. The config
// record is the only one carrying unitInformation; every state record
// carries turnInfo whose first element is the state type.
func ClassifyFrame(raw []byte) FrameKind {
	if !gjson.ValidBytes(raw) {
		return FrameUnknown
	}
	if gjson.GetBytes(raw, "unitInformation").Exists() {
		return FrameConfig
	}
	stateType := gjson.GetBytes(raw, "turnInfo.0")
	if !stateType.Exists() {
		return FrameUnknown
	}
	switch stateType.Int() {
	case 0:
		return FrameTurn
	case 1:
		return FrameAction
	case 2:
		return FrameEnd
	default:
		return FrameUnknown
	}
}

// ReadFrame reads a single newline-terminated record. Blank lines are skipped.
func ReadFrame(r *bufio.Reader) (Frame, error) {
	for {
		line, err := r.ReadBytes('\n')
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return Frame{Kind: ClassifyFrame(line), Raw: line}, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Frame{}, io.EOF
			}
			return Frame{}, fmt.Errorf("read frame: %w", err)
		}
	}
}
