package editor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// Editor routes input events through Step and executes the resulting
// commands against the quote, the price source and the state container.
//
// Handlers run to completion before returning. The only error they return
// is a pricing fault; validation failures become a Notice in the state and
// stale row addresses are ignored.
type Editor struct {
	items   *quote.Store
	pricer  pricing.Service
	state   Container
	confirm Confirmer
}

// New creates an editor. A nil container gets an in-memory Store; a nil
// confirmer declines every prompt.
func New(items *quote.Store, pricer pricing.Service, state Container, confirm Confirmer) *Editor {
	if state == nil {
		state = NewStore()
	}
	if confirm == nil {
		confirm = AutoConfirmer(false)
	}
	return &Editor{
		items:   items,
		pricer:  pricer,
		state:   state,
		confirm: confirm,
	}
}

// State returns the current editor state.
func (e *Editor) State() State {
	return e.state.State()
}

// Items returns a copy of the quote's line items.
func (e *Editor) Items() []quote.LineItem {
	return e.items.Items()
}

// Quote returns the store the editor writes to.
func (e *Editor) Quote() *quote.Store {
	return e.items
}

// ActivateTab switches to tab.
func (e *Editor) ActivateTab(tab Tab) error {
	return e.Handle(ActivateTab{Tab: tab})
}

// HandleCellClick interprets a click on a grid cell under the live mode.
func (e *Editor) HandleCellClick(row int, col Column) error {
	return e.Handle(CellClick{Row: row, Column: col})
}

// HandleModeToggle presses the button for mode on tab.
func (e *Editor) HandleModeToggle(tab Tab, mode Mode) error {
	return e.Handle(ModeToggle{Tab: tab, Mode: mode})
}

// HandleCounterChange presses + or - on an accessory counter.
func (e *Editor) HandleCounterChange(kind pricing.Kind, dir Direction) error {
	return e.Handle(CounterChange{Kind: kind, Direction: dir})
}

// HandleTextInput records the text typed so far.
func (e *Editor) HandleTextInput(value string) error {
	return e.Handle(TextInput{Value: value})
}

// HandleTextConfirm commits typed text to the target cell.
func (e *Editor) HandleTextConfirm(value string) error {
	return e.Handle(TextConfirm{Value: value})
}

// HandleBatchCycle advances an option column on every row.
func (e *Editor) HandleBatchCycle(col Column) error {
	return e.Handle(BatchCycle{Column: col})
}

// Handle runs one event through the state machine.
func (e *Editor) Handle(ev Event) error {
	st := e.state.State()
	snap := Snapshot{
		Session:  st.Session,
		Items:    e.items.Items(),
		Counters: st.Counters,
	}

	next, cmds := Step(snap, ev)
	if !sameSession(st.Session, next) {
		logging.LogTransition(eventName(ev),
			string(st.Session.Tab), string(st.Session.Mode),
			string(next.Tab), string(next.Mode))
		e.state.Dispatch(SetSession{Session: next})
	}
	return e.run(cmds)
}

// RecalculateDrive recomputes all five drive/accessories prices and their
// grand total from the current items and counters. Nothing is written if
// any price fails.
func (e *Editor) RecalculateDrive() error {
	items := e.items.Items()
	counters := e.state.State().Counters
	product := e.items.ProductType()

	counts := map[pricing.Kind]int{
		pricing.KindWinder:  quote.CountWinders(items),
		pricing.KindMotor:   quote.CountMotors(items),
		pricing.KindRemote:  counters.Remote,
		pricing.KindCharger: counters.Charger,
		pricing.KindCord:    counters.Cord,
	}

	summary := AccessorySummary{Lines: make(map[pricing.Kind]AccessoryLine, len(pricing.DriveKinds))}
	for _, kind := range pricing.DriveKinds {
		count := counts[kind]
		price, err := e.pricer.PriceAccessory(product, kind, pricing.Params{Count: count})
		if err != nil {
			return NewPricingError(fmt.Sprintf("pricing %s for %s", kind, product), err)
		}
		line := AccessoryLine{Count: count, Price: price}
		if count > 0 {
			line.Unit = price / float64(count)
		}
		summary.Lines[kind] = line
		summary.GrandTotal += price
	}

	e.state.Dispatch(SetDriveSummary{Summary: summary})
	for _, kind := range pricing.DriveKinds {
		e.items.SetAccessoryCost(string(kind), summary.Lines[kind].Price)
	}
	logging.LogRecalculation("drive", summary.GrandTotal, zap.String("product", product))
	return nil
}

// RecalculateDual reprices the dual brackets and refreshes the accessories
// total.
func (e *Editor) RecalculateDual() error {
	product := e.items.ProductType()
	price, err := e.pricer.PriceAccessory(product, pricing.KindDual, pricing.Params{Items: e.items.Items()})
	if err != nil {
		return NewPricingError(fmt.Sprintf("pricing dual for %s", product), err)
	}

	e.items.SetAccessoryCost(string(pricing.KindDual), price)
	e.state.Dispatch(SetDualPrice{Price: price})
	logging.LogRecalculation("dual", price, zap.String("product", product))
	e.refreshAccessoriesTotal(price)
	return nil
}

func (e *Editor) refreshAccessoriesTotal(dual float64) {
	drive := e.state.State().Drive
	total := dual
	for _, kind := range pricing.DriveKinds {
		total += drive.Line(kind).Price
	}
	e.state.Dispatch(SetAccessoriesTotal{Total: total})
}

func (e *Editor) run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := e.exec(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) exec(cmd Command) error {
	switch c := cmd.(type) {
	case UpdateItem:
		if !e.items.UpdateItemProperty(c.Row, c.Field, c.Value) {
			logging.Debug("Item update ignored",
				zap.Int("row", c.Row),
				zap.String("field", string(c.Field)),
			)
		}
	case ToggleMarker:
		e.toggleMarker(c)
	case RecalculateDrive:
		return e.RecalculateDrive()
	case RecalculateDual:
		return e.RecalculateDual()
	case RefreshAccessoriesTotal:
		dual := e.items.AccessoryCost(string(pricing.KindDual))
		e.state.Dispatch(SetDualPrice{Price: dual})
		e.refreshAccessoriesTotal(dual)
	case Confirm:
		e.requestConfirmation(c)
	case ShowNotice:
		if c.Level == NoticeError {
			logging.LogRejected("validation", c.Message)
		}
		e.state.Dispatch(c)
	case Action:
		e.state.Dispatch(c)
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
	return nil
}

func (e *Editor) toggleMarker(c ToggleMarker) {
	item, ok := e.items.Item(c.Row)
	if !ok {
		return
	}

	var value any
	switch c.Field {
	case quote.FieldWinder:
		value = quote.WinderSet
		if item.Winder != quote.WinderNone {
			value = quote.WinderNone
		}
	case quote.FieldMotor:
		value = quote.MotorSet
		if item.Motor != quote.MotorNone {
			value = quote.MotorNone
		}
	case quote.FieldDual:
		value = quote.DualPaired
		if item.Dual != quote.DualNone {
			value = quote.DualNone
		}
	default:
		return
	}
	e.items.UpdateItemProperty(c.Row, c.Field, value)
}

// requestConfirmation parks c.OnAccept behind the confirmer. Declining
// leaves everything as it was before the prompt.
func (e *Editor) requestConfirmation(c Confirm) {
	e.confirm.RequestConfirmation(c.Message,
		func() {
			logging.LogConfirmation(c.Message, true)
			if err := e.run(c.OnAccept); err != nil {
				logging.Error("Confirmed action failed", zap.Error(err))
			}
		},
		func() {
			logging.LogConfirmation(c.Message, false)
		},
	)
}

func sameSession(a, b Session) bool {
	if a.Tab != b.Tab || a.Mode != b.Mode || a.PendingText != b.PendingText {
		return false
	}
	if (a.Target == nil) != (b.Target == nil) {
		return false
	}
	return a.Target == nil || *a.Target == *b.Target
}

func eventName(ev Event) string {
	switch ev.(type) {
	case ActivateTab:
		return "activateTab"
	case CellClick:
		return "cellClick"
	case ModeToggle:
		return "modeToggle"
	case CounterChange:
		return "counterChange"
	case TextInput:
		return "textInput"
	case TextConfirm:
		return "textConfirm"
	case BatchCycle:
		return "batchCycle"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
