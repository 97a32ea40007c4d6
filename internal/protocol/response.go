package protocol

import (
	"encoding/json"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// StateMessage carries everything a client needs to redraw the editor.
type StateMessage struct {
	Type     MessageType      `json:"type"`
	Product  string           `json:"product"`
	Session  SessionView      `json:"session"`
	Columns  []editor.Column  `json:"columns"`
	Items    []quote.LineItem `json:"items"`
	Counters map[string]int   `json:"counters"`
	Prices   PriceView        `json:"prices"`
	Notice   *NoticeView      `json:"notice,omitempty"`
	Focus    *FocusView       `json:"focus,omitempty"`
}

// SessionView is the wire form of editor.Session.
type SessionView struct {
	Tab         editor.Tab   `json:"tab"`
	Mode        editor.Mode  `json:"mode,omitempty"`
	Target      *editor.Cell `json:"target,omitempty"`
	PendingText string       `json:"pendingText,omitempty"`
}

// LineView is one priced accessory.
type LineView struct {
	Count int     `json:"count"`
	Unit  float64 `json:"unit"`
	Price float64 `json:"price"`
}

// PriceView holds the derived prices.
type PriceView struct {
	Drive            map[pricing.Kind]LineView `json:"drive"`
	DriveTotal       float64                   `json:"driveTotal"`
	Dual             float64                   `json:"dual"`
	AccessoriesTotal float64                   `json:"accessoriesTotal"`
}

// NoticeView is the latest user-facing message.
type NoticeView struct {
	Level   editor.NoticeLevel `json:"level"`
	Message string             `json:"message"`
	Seq     int                `json:"seq"`
}

// FocusView asks the client to focus an input.
type FocusView struct {
	Target editor.Cell `json:"target"`
	Select bool        `json:"select"`
	Seq    int         `json:"seq"`
}

// PromptMessage asks the client a yes/no question. The client answers with
// a confirmReply request.
type PromptMessage struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// ErrorMessage reports a request the editor could not process.
type ErrorMessage struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
	Fatal   bool        `json:"fatal,omitempty"`
}

// NewStateMessage builds a state message from the editor state and items.
func NewStateMessage(st editor.State, items []quote.LineItem, product string) *StateMessage {
	msg := &StateMessage{
		Type:    MsgState,
		Product: product,
		Session: SessionView{
			Tab:         st.Session.Tab,
			Mode:        st.Session.Mode,
			Target:      st.Session.Target,
			PendingText: st.Session.PendingText,
		},
		Columns: st.VisibleColumns,
		Items:   items,
		Counters: map[string]int{
			string(pricing.KindRemote):  st.Counters.Remote,
			string(pricing.KindCharger): st.Counters.Charger,
			string(pricing.KindCord):    st.Counters.Cord,
		},
		Prices: PriceView{
			Drive:            make(map[pricing.Kind]LineView, len(pricing.DriveKinds)),
			DriveTotal:       st.Drive.GrandTotal,
			Dual:             st.DualPrice,
			AccessoriesTotal: st.AccessoriesTotal,
		},
	}

	for _, kind := range pricing.DriveKinds {
		line := st.Drive.Line(kind)
		msg.Prices.Drive[kind] = LineView{Count: line.Count, Unit: line.Unit, Price: line.Price}
	}
	if st.Notice.Seq > 0 {
		msg.Notice = &NoticeView{Level: st.Notice.Level, Message: st.Notice.Message, Seq: st.Notice.Seq}
	}
	if st.Focus.Seq > 0 {
		msg.Focus = &FocusView{Target: st.Focus.Target, Select: st.Focus.Select, Seq: st.Focus.Seq}
	}
	return msg
}

// NewPromptMessage builds a prompt message.
func NewPromptMessage(message string) *PromptMessage {
	return &PromptMessage{Type: MsgPrompt, Message: message}
}

// NewErrorMessage builds an error message.
func NewErrorMessage(message string, fatal bool) *ErrorMessage {
	return &ErrorMessage{Type: MsgError, Message: message, Fatal: fatal}
}

// Encode marshals an outbound message.
func Encode(msg any) ([]byte, error) {
	return json.Marshal(msg)
}
