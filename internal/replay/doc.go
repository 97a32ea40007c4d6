// Package replay applies a scripted sequence of editor events to a quote.
//
// A script is YAML. Steps use the same fields as websocket requests, with
// the message type under "op":
//
//	product: roller
//	rows: 3
//	steps:
//	  - op: activateTab
//	    tab: driveAccessories
//	  - op: modeToggle
//	    mode: motor
//	  - op: cellClick
//	    row: 0
//	    column: motor
//	  - op: modeToggle
//	    mode: remote
//	  - op: counterChange
//	    kind: remote
//	    direction: subtract
//	  - op: confirmReply
//	    accept: false
//	expect:
//	  drive_total: 250
//	  counters:
//	    remote: 1
//
// A prompt that is not followed by a confirmReply step is answered by the
// runner's AnswerFunc.
package replay
