package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
)

// MessageType names a wire message.
type MessageType string

// Inbound message types (client to editor)
const (
	MsgActivateTab   MessageType = "activateTab"
	MsgCellClick     MessageType = "cellClick"
	MsgModeToggle    MessageType = "modeToggle"
	MsgCounterChange MessageType = "counterChange"
	MsgTextInput     MessageType = "textInput"
	MsgTextConfirm   MessageType = "textConfirm"
	MsgBatchCycle    MessageType = "batchCycle"
	MsgConfirmReply  MessageType = "confirmReply"
)

// Outbound message types (editor to client)
const (
	MsgState  MessageType = "state"
	MsgPrompt MessageType = "prompt"
	MsgError  MessageType = "error"
)

// MaxMessageSize bounds an inbound message.
const MaxMessageSize = 64 * 1024

// Request is one inbound message. Only the fields its type needs are set.
// Replay scripts use the same shape in YAML.
type Request struct {
	Type      MessageType `json:"type" yaml:"op"`
	Tab       string      `json:"tab,omitempty" yaml:"tab,omitempty"`
	Mode      string      `json:"mode,omitempty" yaml:"mode,omitempty"`
	Row       *int        `json:"row,omitempty" yaml:"row,omitempty"`
	Column    string      `json:"column,omitempty" yaml:"column,omitempty"`
	Kind      string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Direction string      `json:"direction,omitempty" yaml:"direction,omitempty"`
	Value     string      `json:"value,omitempty" yaml:"value,omitempty"`
	Accept    *bool       `json:"accept,omitempty" yaml:"accept,omitempty"`
}

// ParseRequest decodes a JSON request.
func ParseRequest(data []byte) (*Request, error) {
	if len(data) > MaxMessageSize {
		return nil, fmt.Errorf("message too large: %d bytes (max %d)", len(data), MaxMessageSize)
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	if req.Type == "" {
		return nil, fmt.Errorf("message has no type")
	}
	return &req, nil
}

// IsConfirmReply reports whether the request answers a prompt.
func (r *Request) IsConfirmReply() bool {
	return r.Type == MsgConfirmReply
}

// Accepted returns the answer carried by a confirm reply.
func (r *Request) Accepted() (bool, error) {
	if r.Accept == nil {
		return false, fmt.Errorf("%s requires accept", r.Type)
	}
	return *r.Accept, nil
}

// Event converts the request into an editor event.
func (r *Request) Event() (editor.Event, error) {
	switch r.Type {
	case MsgActivateTab:
		tab, err := editor.ParseTab(r.Tab)
		if err != nil {
			return nil, err
		}
		return editor.ActivateTab{Tab: tab}, nil

	case MsgCellClick:
		if r.Row == nil {
			return nil, fmt.Errorf("%s requires row", r.Type)
		}
		col, err := editor.ParseColumn(r.Column)
		if err != nil {
			return nil, err
		}
		return editor.CellClick{Row: *r.Row, Column: col}, nil

	case MsgModeToggle:
		mode, err := editor.ParseMode(r.Mode)
		if err != nil {
			return nil, err
		}
		tab := mode.Tab()
		if r.Tab != "" {
			if tab, err = editor.ParseTab(r.Tab); err != nil {
				return nil, err
			}
		}
		return editor.ModeToggle{Tab: tab, Mode: mode}, nil

	case MsgCounterChange:
		kind, err := pricing.ParseKind(r.Kind)
		if err != nil {
			return nil, err
		}
		dir, err := editor.ParseDirection(r.Direction)
		if err != nil {
			return nil, err
		}
		return editor.CounterChange{Kind: kind, Direction: dir}, nil

	case MsgTextInput:
		return editor.TextInput{Value: r.Value}, nil

	case MsgTextConfirm:
		return editor.TextConfirm{Value: r.Value}, nil

	case MsgBatchCycle:
		col, err := editor.ParseColumn(r.Column)
		if err != nil {
			return nil, err
		}
		return editor.BatchCycle{Column: col}, nil
	}
	return nil, fmt.Errorf("unknown message type %q", r.Type)
}
