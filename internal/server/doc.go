// Package server implements a WebSocket server for remote quote editing.
//
// Each connection gets its own copy of the starting quote and its own
// editor, so clients never see each other's edits. The wire format is the
// JSON defined in the protocol package.
//
// # Endpoints
//
//	/ws       websocket editor sessions
//	/healthz  plain-text liveness probe with the active connection count
//
// # Session Flow
//
// On connect the server activates the Location tab and sends a state
// message. Every request is answered with a fresh state. A request that
// triggers a confirmation (for example replacing a motor with a winder) is
// followed by a prompt message, and the session then accepts only
// confirmReply until the prompt is answered.
//
// # Usage
//
//	srv, err := server.New(&server.Config{
//		Host:  "127.0.0.1",
//		Port:  8765,
//		Quote: quote.NewBlankStore("roller", 5),
//	}, pricing.DefaultTable())
//	if err != nil {
//		return err
//	}
//	return srv.Start(ctx)
//
// Connections send pings every 54 seconds and are dropped when no pong
// arrives within 60 seconds.
package server
