// Package quote holds the line items of a quote being edited.
//
// A quote is an ordered list of LineItem values, one per physical blind.
// The list always ends with an empty sentinel row that is never targeted
// by sequential or paired edits. Items are only ever mutated one field at a
// time through Store.UpdateItemProperty; addressing a row that does not
// exist is a silent no-op.
//
// # Fixtures
//
// Items can be loaded from a YAML file:
//
//	items:
//	  - location: Kitchen
//	    fabric: Blockout
//	    motor: Motor
//	  - location: Lounge
//	    dual: D
//	    chain: 3
//
// # Thread Safety
//
// Store guards its items with a RWMutex and returns copies on read, so a
// caller holding a slice from Items can never observe a later update.
package quote
