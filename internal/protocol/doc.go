// Package protocol defines the JSON messages exchanged between a remote
// editor client and `quotedesk serve` over a websocket.
//
// # Inbound
//
// Every request is a flat JSON object with a type and the fields that type
// needs:
//
//	{"type": "activateTab", "tab": "dualChain"}
//	{"type": "modeToggle", "tab": "dualChain", "mode": "dual"}
//	{"type": "cellClick", "row": 2, "column": "dual"}
//	{"type": "counterChange", "kind": "remote", "direction": "add"}
//	{"type": "textInput", "value": "Kitc"}
//	{"type": "textConfirm", "value": "Kitchen"}
//	{"type": "batchCycle", "column": "roll"}
//	{"type": "confirmReply", "accept": true}
//
// # Outbound
//
// After every request the server sends a "state" message with the session,
// items, visible columns, counters and prices. A request that needs
// confirmation is followed by a "prompt"; until it is answered only
// confirmReply is accepted. Malformed requests get an "error" message and
// leave the editor untouched.
package protocol
