// Package editor implements the tab and mode state machine of the product
// detail editor, together with the accessory pricing and validation rules
// each mode carries.
//
// # Structure
//
// Step is a pure transition function: given a Snapshot of the session, the
// line items and the accessory counters, it returns the next Session and a
// list of Commands. Editor executes those commands against a quote.Store, a
// pricing.Service and a state Container, and asks a Confirmer before running
// commands gated behind a Confirm.
//
// The live Mode is a single value, and every mode belongs to exactly one Tab,
// so clicks and key presses are dispatched on that one value.
//
// # Tabs
//
//   - location: sequential location entry down the grid
//   - fabric: no modes, shows the fabric column
//   - options: roll direction and control side cycling
//   - driveAccessories: winder/motor markers and remote/charger/cord counters
//   - dualChain: dual bracket pairing and chain length entry
//
// # Errors
//
// Validation failures (odd or non-adjacent dual pairs, bad chain input)
// are shown as a Notice and leave the session where it was. Rows that no
// longer exist are ignored. Only pricing faults are returned as errors.
package editor
