package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/protocol"
	"github.com/muurk/quotedesk/internal/quote"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// session is one connected client with its own quote and editor.
type session struct {
	conn       *websocket.Conn
	remoteAddr string
	items      *quote.Store
	prompts    *editor.PromptQueue
	editor     *editor.Editor
}

func newSession(conn *websocket.Conn, remoteAddr string, items *quote.Store, pricer pricing.Service) *session {
	prompts := editor.NewPromptQueue()
	return &session{
		conn:       conn,
		remoteAddr: remoteAddr,
		items:      items,
		prompts:    prompts,
		editor:     editor.New(items, pricer, nil, prompts),
	}
}

// run sends the initial state and then processes requests until the peer
// goes away.
func (s *session) run() error {
	s.conn.SetReadLimit(protocol.MaxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	stop := make(chan struct{})
	defer close(stop)
	go s.ping(stop)

	// Show the location columns before the first request arrives.
	if err := s.editor.ActivateTab(editor.TabLocation); err != nil {
		return err
	}
	if err := s.sendState(); err != nil {
		return err
	}

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Info("Connection closed by client", zap.String("remote_addr", s.remoteAddr))
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return nil
			}
			return fmt.Errorf("read failed: %w", err)
		}

		if msgType != websocket.TextMessage {
			logging.Warn("Ignoring non-text message",
				zap.String("remote_addr", s.remoteAddr),
				zap.Int("message_type", msgType),
			)
			continue
		}

		if err := s.handle(data); err != nil {
			return err
		}
	}
}

// handle applies one request and writes the replies. Only write failures
// are returned; bad requests are reported to the client.
func (s *session) handle(data []byte) error {
	req, err := protocol.ParseRequest(data)
	if err != nil {
		logging.LogWireMessage(s.remoteAddr, "received", "invalid", data)
		return s.sendError(err.Error())
	}
	logging.LogWireMessage(s.remoteAddr, "received", string(req.Type), data)

	if pending := s.prompts.Pending(); pending != nil {
		if !req.IsConfirmReply() {
			if err := s.sendError("waiting for an answer to: " + pending.Message); err != nil {
				return err
			}
			return s.sendPrompt()
		}
		accepted, err := req.Accepted()
		if err != nil {
			return s.sendError(err.Error())
		}
		s.prompts.Resolve(accepted)
		return s.sendUpdate()
	}

	if req.IsConfirmReply() {
		return s.sendError("no confirmation pending")
	}

	ev, err := req.Event()
	if err != nil {
		return s.sendError(err.Error())
	}
	if err := s.editor.Handle(ev); err != nil {
		logging.Error("Request failed",
			zap.String("remote_addr", s.remoteAddr),
			zap.String("type", string(req.Type)),
			zap.Error(err),
		)
		if err := s.sendError(editor.UserMessage(err)); err != nil {
			return err
		}
	}
	return s.sendUpdate()
}

// sendUpdate sends the state and, when one is waiting, the prompt.
func (s *session) sendUpdate() error {
	if err := s.sendState(); err != nil {
		return err
	}
	if s.prompts.Pending() != nil {
		return s.sendPrompt()
	}
	return nil
}

func (s *session) sendState() error {
	msg := protocol.NewStateMessage(s.editor.State(), s.items.Items(), s.items.ProductType())
	return s.send(msg.Type, msg)
}

func (s *session) sendPrompt() error {
	pending := s.prompts.Pending()
	if pending == nil {
		return nil
	}
	msg := protocol.NewPromptMessage(pending.Message)
	return s.send(msg.Type, msg)
}

func (s *session) sendError(message string) error {
	msg := protocol.NewErrorMessage(message, false)
	return s.send(msg.Type, msg)
}

func (s *session) send(msgType protocol.MessageType, msg any) error {
	data, err := protocol.Encode(msg)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", msgType, err)
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	logging.LogWireMessage(s.remoteAddr, "sent", string(msgType), data)
	return nil
}

func (s *session) ping(stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logging.Debug("Ping failed", zap.String("remote_addr", s.remoteAddr), zap.Error(err))
				return
			}
		}
	}
}
