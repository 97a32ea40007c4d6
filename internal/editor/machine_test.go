package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

func TestStepDoesNotMutateSnapshot(t *testing.T) {
	items := []quote.LineItem{{Location: "A", Dual: quote.DualPaired}, {Location: "B"}, {}}
	snap := Snapshot{
		Session: Session{Tab: TabLocation, Mode: ModeLocationEdit, Target: &Cell{Row: 0, Column: ColLocation}, PendingText: "A"},
		Items:   items,
	}
	orig := snap.Session.Clone()
	origItems := quote.CloneItems(items)

	next, cmds := Step(snap, TextConfirm{Value: "Kitchen"})

	assert.Equal(t, orig, snap.Session)
	assert.Equal(t, origItems, snap.Items)
	require.NotNil(t, next.Target)
	assert.Equal(t, 1, next.Target.Row)
	assert.Equal(t, 0, snap.Session.Target.Row, "returned session must not alias the input target")
	assert.Equal(t, []Command{
		UpdateItem{Row: 0, Field: quote.FieldLocation, Value: "Kitchen"},
		RequestFocus{Target: Cell{Row: 1, Column: ColLocation}, Select: true},
	}, cmds)
}

func TestStepActivateTabFromDriveMode(t *testing.T) {
	snap := Snapshot{
		Session: Session{Tab: TabDrive, Mode: ModeCord},
		Items:   make([]quote.LineItem, 3),
	}

	next, cmds := Step(snap, ActivateTab{Tab: TabFabric})

	assert.Equal(t, Session{Tab: TabFabric}, next)
	require.Len(t, cmds, 2)
	assert.Equal(t, RecalculateDrive{}, cmds[0])
	assert.Equal(t, SetVisibleColumns{Columns: VisibleColumns(TabFabric)}, cmds[1])
}

func TestStepDriveToggleOrder(t *testing.T) {
	items := []quote.LineItem{{Motor: quote.MotorSet}, {}}
	snap := Snapshot{Session: Session{Tab: TabDrive, Mode: ModeWinder}, Items: items}

	next, cmds := Step(snap, ModeToggle{Tab: TabDrive, Mode: ModeCharger})

	assert.Equal(t, ModeCharger, next.Mode)
	assert.Equal(t, []Command{
		RecalculateDrive{},
		SetCount{Kind: pricing.KindCharger, Count: 1},
		ShowNotice{Level: NoticeInfo, Message: HintFor(ModeCharger)},
	}, cmds)
}

func TestStepWinderOverMotorClearsMotor(t *testing.T) {
	items := []quote.LineItem{{Motor: quote.MotorSet}, {}}
	snap := Snapshot{Session: Session{Tab: TabDrive, Mode: ModeWinder}, Items: items}

	_, cmds := Step(snap, CellClick{Row: 0, Column: ColWinder})

	require.Len(t, cmds, 1)
	confirm, ok := cmds[0].(Confirm)
	require.True(t, ok)
	assert.Equal(t, MsgMotorToWinder, confirm.Message)
	assert.Equal(t, []Command{
		ToggleMarker{Row: 0, Field: quote.FieldWinder},
		UpdateItem{Row: 0, Field: quote.FieldMotor, Value: quote.MotorNone},
	}, confirm.OnAccept)
}

func TestStepMotorOverWinderClearsWinder(t *testing.T) {
	items := []quote.LineItem{{}, {Winder: quote.WinderSet}, {}}
	snap := Snapshot{Session: Session{Tab: TabDrive, Mode: ModeMotor}, Items: items}

	_, cmds := Step(snap, CellClick{Row: 1, Column: ColMotor})

	require.Len(t, cmds, 1)
	confirm, ok := cmds[0].(Confirm)
	require.True(t, ok)
	assert.Equal(t, MsgWinderToMotor, confirm.Message)
	assert.Equal(t, []Command{
		ToggleMarker{Row: 1, Field: quote.FieldMotor},
		UpdateItem{Row: 1, Field: quote.FieldWinder, Value: quote.WinderNone},
	}, confirm.OnAccept)
}

func TestStepConfirmCarriesContinuation(t *testing.T) {
	items := []quote.LineItem{{Motor: quote.MotorSet}, {}}
	snap := Snapshot{
		Session:  Session{Tab: TabDrive, Mode: ModeCharger},
		Items:    items,
		Counters: Counters{Charger: 1},
	}

	next, cmds := Step(snap, CounterChange{Kind: pricing.KindCharger, Direction: Decrement})

	assert.Equal(t, snap.Session, next)
	require.Len(t, cmds, 1)
	confirm, ok := cmds[0].(Confirm)
	require.True(t, ok)
	assert.Equal(t, MsgZeroWithMotors(pricing.KindCharger), confirm.Message)
	assert.Equal(t, []Command{SetCount{Kind: pricing.KindCharger, Count: 0}}, confirm.OnAccept)
}

func TestStepUnclaimedEvents(t *testing.T) {
	snap := Snapshot{Session: NewSession(), Items: make([]quote.LineItem, 3)}

	events := []Event{
		CellClick{Row: 0, Column: ColLocation},
		CounterChange{Kind: pricing.KindRemote, Direction: Increment},
		TextInput{Value: "x"},
		TextConfirm{Value: "x"},
		BatchCycle{Column: ColRoll},
		ModeToggle{Tab: TabDrive, Mode: ModeWinder},
		ModeToggle{Tab: TabLocation, Mode: ModeNone},
	}
	for _, ev := range events {
		next, cmds := Step(snap, ev)
		assert.Equal(t, snap.Session, next, "%T", ev)
		assert.Empty(t, cmds, "%T", ev)
	}
}

func TestModeTab(t *testing.T) {
	for _, tab := range Tabs {
		for _, mode := range ModesFor(tab) {
			assert.Equal(t, tab, mode.Tab(), string(mode))
			parsed, err := ParseMode(string(mode))
			require.NoError(t, err)
			assert.Equal(t, mode, parsed)
		}
	}
	assert.Equal(t, Tab(""), ModeNone.Tab())
	assert.Empty(t, ModesFor(TabFabric))

	_, err := ParseMode("turbo")
	assert.Error(t, err)
}

func TestParseHelpers(t *testing.T) {
	tab, err := ParseTab("driveAccessories")
	require.NoError(t, err)
	assert.Equal(t, TabDrive, tab)
	_, err = ParseTab("k9")
	assert.Error(t, err)

	col, err := ParseColumn("fabricTypeDisplay")
	require.NoError(t, err)
	assert.Equal(t, ColFabric, col)
	_, err = ParseColumn("price")
	assert.Error(t, err)

	dir, err := ParseDirection("-")
	require.NoError(t, err)
	assert.Equal(t, Decrement, dir)
	dir, err = ParseDirection("add")
	require.NoError(t, err)
	assert.Equal(t, Increment, dir)
	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestColumnValue(t *testing.T) {
	item := quote.LineItem{Location: "Hall", Chain: intPtr(3), Dual: quote.DualPaired}
	assert.Equal(t, "2", ColSequence.Value(1, item))
	assert.Equal(t, "Hall", ColLocation.Value(1, item))
	assert.Equal(t, "3", ColChain.Value(1, item))
	assert.Equal(t, "D", ColDual.Value(1, item))
	assert.Equal(t, "", ColChain.Value(0, quote.LineItem{}))
}
