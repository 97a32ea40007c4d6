package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

var errTest = errors.New("test failure")

const testPrices = `products:
  roller:
    winder: 10
    motor: 100
    remote: 20
    charger: 30
    cord: 5
    dual: 7
`

func testTable(t *testing.T) *pricing.Table {
	t.Helper()
	table, err := pricing.ParseTable([]byte(testPrices))
	require.NoError(t, err)
	return table
}

// newTestEditor builds an editor over rows editable rows plus the sentinel.
func newTestEditor(t *testing.T, rows int, confirm Confirmer) (*Editor, *quote.Store) {
	t.Helper()
	items := quote.NewBlankStore("roller", rows)
	return New(items, testTable(t), NewStore(), confirm), items
}

func enterMode(t *testing.T, e *Editor, tab Tab, mode Mode) {
	t.Helper()
	require.NoError(t, e.ActivateTab(tab))
	require.NoError(t, e.HandleModeToggle(tab, mode))
	require.Equal(t, mode, e.State().Session.Mode)
}

func TestDualExitValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    []int
		wantOK  bool
		wantMsg string
	}{
		{"two adjacent pairs", []int{2, 3, 5, 6}, true, ""},
		{"odd count", []int{2, 3, 5}, false, MsgDualOddCount},
		{"not adjacent", []int{2, 4}, false, MsgDualNotAdjacent},
		{"nothing marked", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, items := newTestEditor(t, 8, nil)
			enterMode(t, e, TabDualChain, ModeDual)

			for _, row := range tt.rows {
				require.NoError(t, e.HandleCellClick(row, ColDual))
			}
			before := items.Items()

			require.NoError(t, e.HandleModeToggle(TabDualChain, ModeDual))
			st := e.State()

			if tt.wantOK {
				assert.Equal(t, ModeNone, st.Session.Mode)
				return
			}
			assert.Equal(t, ModeDual, st.Session.Mode, "mode must stay active")
			assert.Equal(t, NoticeError, st.Notice.Level)
			assert.Equal(t, tt.wantMsg, st.Notice.Message)
			assert.Equal(t, before, items.Items(), "markers must be unchanged")
		})
	}
}

func TestDualSwitchToChainValidatesFirst(t *testing.T) {
	e, _ := newTestEditor(t, 4, nil)
	enterMode(t, e, TabDualChain, ModeDual)
	require.NoError(t, e.HandleCellClick(0, ColDual))

	require.NoError(t, e.HandleModeToggle(TabDualChain, ModeChain))
	assert.Equal(t, ModeDual, e.State().Session.Mode)

	require.NoError(t, e.HandleCellClick(1, ColDual))
	require.NoError(t, e.HandleModeToggle(TabDualChain, ModeChain))
	assert.Equal(t, ModeChain, e.State().Session.Mode)
}

func TestDualClickRepricesImmediately(t *testing.T) {
	e, items := newTestEditor(t, 4, nil)
	enterMode(t, e, TabDualChain, ModeDual)

	require.NoError(t, e.HandleCellClick(0, ColDual))
	require.NoError(t, e.HandleCellClick(1, ColDual))

	st := e.State()
	assert.Equal(t, 14.0, st.DualPrice)
	assert.Equal(t, 14.0, st.AccessoriesTotal)
	assert.Equal(t, 14.0, items.AccessoryCost("dual"))

	require.NoError(t, e.HandleCellClick(1, ColDual))
	assert.Equal(t, 7.0, e.State().DualPrice)
}

func TestDualSentinelRowIgnored(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDualChain, ModeDual)

	require.NoError(t, e.HandleCellClick(2, ColDual))
	require.NoError(t, e.HandleCellClick(99, ColDual))
	require.NoError(t, e.HandleCellClick(-1, ColDual))

	assert.Empty(t, quote.PairedRows(items.Items()))
}

func TestChainConfirm(t *testing.T) {
	tests := []struct {
		input      string
		wantChain  *int
		wantActive bool
	}{
		{"", nil, false},
		{"4", intPtr(4), false},
		{"0", intPtr(9), true},
		{"-1", intPtr(9), true},
		{"3.5", intPtr(9), true},
		{"abc", intPtr(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, items := newTestEditor(t, 3, nil)
			items.UpdateItemProperty(1, quote.FieldChain, intPtr(9))
			enterMode(t, e, TabDualChain, ModeChain)

			require.NoError(t, e.HandleCellClick(1, ColChain))
			target := e.State().Session.Target
			require.NotNil(t, target)
			assert.Equal(t, Cell{Row: 1, Column: ColChain}, *target)

			require.NoError(t, e.HandleTextConfirm(tt.input))
			st := e.State()
			item, _ := items.Item(1)

			assert.Equal(t, tt.wantChain, item.Chain)
			assert.Equal(t, ModeChain, st.Session.Mode)
			if tt.wantActive {
				require.NotNil(t, st.Session.Target, "target must stay active")
				assert.Equal(t, tt.input, st.Session.PendingText)
				assert.Equal(t, MsgChainNotPositive, st.Notice.Message)
			} else {
				assert.Nil(t, st.Session.Target)
				assert.Empty(t, st.Session.PendingText)
			}
		})
	}
}

func TestChainConfirmWithoutTargetIgnored(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDualChain, ModeChain)

	require.NoError(t, e.HandleTextConfirm("5"))
	for _, item := range items.Items() {
		assert.Nil(t, item.Chain)
	}
}

func TestSequentialLocationEntry(t *testing.T) {
	// Four editable rows plus the sentinel: lastIndex is 4.
	e, items := newTestEditor(t, 4, nil)
	items.UpdateItemProperty(1, quote.FieldLocation, "Lounge")
	items.UpdateItemProperty(3, quote.FieldLocation, "Study")

	enterMode(t, e, TabLocation, ModeLocationEdit)
	st := e.State()
	require.NotNil(t, st.Session.Target)
	assert.Equal(t, Cell{Row: 0, Column: ColLocation}, *st.Session.Target)
	assert.Equal(t, 1, st.Focus.Seq)

	require.NoError(t, e.HandleTextConfirm("Kitchen"))
	st = e.State()
	assert.Equal(t, 1, st.Session.Target.Row)
	assert.Equal(t, "Lounge", st.Session.PendingText, "next row value is preloaded")

	require.NoError(t, e.HandleTextConfirm("Lounge 2"))
	require.NoError(t, e.HandleTextConfirm("Bed 1"))
	st = e.State()
	assert.Equal(t, 3, st.Session.Target.Row)
	assert.Equal(t, "Study", st.Session.PendingText)

	// Row 3 is lastIndex-1, so confirming it leaves the mode.
	require.NoError(t, e.HandleTextConfirm("Study 2"))
	st = e.State()
	assert.Equal(t, ModeNone, st.Session.Mode)
	assert.Nil(t, st.Session.Target)
	assert.Empty(t, st.Session.PendingText)

	got := items.Items()
	assert.Equal(t, "Kitchen", got[0].Location)
	assert.Equal(t, "Lounge 2", got[1].Location)
	assert.Equal(t, "Bed 1", got[2].Location)
	assert.Equal(t, "Study 2", got[3].Location)
	assert.True(t, got[4].IsEmpty(), "sentinel row stays empty")
}

func TestLocationClickRetargetsWithoutCommit(t *testing.T) {
	e, items := newTestEditor(t, 3, nil)
	items.UpdateItemProperty(2, quote.FieldLocation, "Hall")
	enterMode(t, e, TabLocation, ModeLocationEdit)

	require.NoError(t, e.HandleTextInput("typed but not confirmed"))
	assert.Equal(t, "typed but not confirmed", e.State().Session.PendingText)

	require.NoError(t, e.HandleCellClick(2, ColFabric))
	st := e.State()
	assert.Equal(t, 2, st.Session.Target.Row)
	assert.Equal(t, ColLocation, st.Session.Target.Column)
	assert.Equal(t, "Hall", st.Session.PendingText)

	item, _ := items.Item(0)
	assert.Empty(t, item.Location, "pending text must not be committed")
}

func TestLocationToggleOffClearsTarget(t *testing.T) {
	e, items := newTestEditor(t, 3, nil)
	enterMode(t, e, TabLocation, ModeLocationEdit)
	require.NoError(t, e.HandleTextInput("Garage"))

	require.NoError(t, e.HandleModeToggle(TabLocation, ModeLocationEdit))
	st := e.State()
	assert.Equal(t, ModeNone, st.Session.Mode)
	assert.Nil(t, st.Session.Target)
	assert.Empty(t, st.Session.PendingText)

	item, _ := items.Item(0)
	assert.Empty(t, item.Location)
}

func TestLocationToggleWithNoRows(t *testing.T) {
	e, _ := newTestEditor(t, 0, nil)
	require.NoError(t, e.HandleModeToggle(TabLocation, ModeLocationEdit))
	assert.Equal(t, ModeNone, e.State().Session.Mode)
}

func TestDriveRecalculationIdempotent(t *testing.T) {
	e, items := newTestEditor(t, 4, nil)
	items.UpdateItemProperty(0, quote.FieldWinder, quote.WinderSet)
	items.UpdateItemProperty(1, quote.FieldMotor, quote.MotorSet)
	items.UpdateItemProperty(2, quote.FieldMotor, quote.MotorSet)

	require.NoError(t, e.RecalculateDrive())
	first := e.State().Drive
	require.NoError(t, e.RecalculateDrive())
	second := e.State().Drive

	assert.Equal(t, first, second)
	assert.Equal(t, 10.0, first.Line(pricing.KindWinder).Price)
	assert.Equal(t, 200.0, first.Line(pricing.KindMotor).Price)
	assert.Equal(t, 2, first.Line(pricing.KindMotor).Count)
	assert.Equal(t, 100.0, first.Line(pricing.KindMotor).Unit)
}

func TestGrandTotalIsSumOfKinds(t *testing.T) {
	e, _ := newTestEditor(t, 3, nil)
	enterMode(t, e, TabDrive, ModeMotor)
	require.NoError(t, e.HandleCellClick(0, ColMotor))
	require.NoError(t, e.HandleModeToggle(TabDrive, ModeRemote))
	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Increment))
	require.NoError(t, e.HandleModeToggle(TabDrive, ModeCord))
	require.NoError(t, e.HandleCounterChange(pricing.KindCord, Increment))
	require.NoError(t, e.HandleCounterChange(pricing.KindCord, Increment))
	require.NoError(t, e.HandleModeToggle(TabDrive, ModeCord))

	st := e.State()
	var sum float64
	for _, kind := range pricing.DriveKinds {
		sum += st.Drive.Line(kind).Price
	}
	assert.Equal(t, sum, st.Drive.GrandTotal)
	// motor 100 + remote 2x20 + cord 2x5
	assert.Equal(t, 150.0, st.Drive.GrandTotal)
	assert.Equal(t, 40.0, e.Quote().AccessoryCost("remote"))
}

func TestDriveEnterDoesNotRecalculate(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	items.UpdateItemProperty(0, quote.FieldWinder, quote.WinderSet)
	enterMode(t, e, TabDrive, ModeWinder)

	assert.Equal(t, 0.0, e.State().Drive.GrandTotal)

	require.NoError(t, e.HandleModeToggle(TabDrive, ModeWinder))
	assert.Equal(t, 10.0, e.State().Drive.GrandTotal)
}

func TestRemoteDecrementToZeroWithMotors(t *testing.T) {
	queue := NewPromptQueue()
	e, items := newTestEditor(t, 2, queue)
	items.UpdateItemProperty(0, quote.FieldMotor, quote.MotorSet)

	enterMode(t, e, TabDrive, ModeRemote)
	assert.Equal(t, 1, e.State().Counters.Remote, "motors preset remotes to one")

	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Decrement))
	prompt := queue.Pending()
	require.NotNil(t, prompt)
	assert.Equal(t, MsgZeroWithMotors(pricing.KindRemote), prompt.Message)
	assert.Equal(t, 1, e.State().Counters.Remote, "decrement waits for confirmation")

	require.True(t, queue.Resolve(true))
	assert.Equal(t, 0, e.State().Counters.Remote)
}

func TestRemoteDecrementDeclined(t *testing.T) {
	queue := NewPromptQueue()
	e, items := newTestEditor(t, 2, queue)
	items.UpdateItemProperty(0, quote.FieldMotor, quote.MotorSet)
	enterMode(t, e, TabDrive, ModeRemote)

	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Decrement))
	require.True(t, queue.Resolve(false))
	assert.Equal(t, 1, e.State().Counters.Remote)
	assert.Nil(t, queue.Pending())
}

func TestRemoteDecrementWithoutMotors(t *testing.T) {
	queue := NewPromptQueue()
	e, _ := newTestEditor(t, 2, queue)
	enterMode(t, e, TabDrive, ModeRemote)
	assert.Equal(t, 0, e.State().Counters.Remote, "no motors, no preset")

	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Increment))
	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Decrement))
	assert.Nil(t, queue.Pending())
	assert.Equal(t, 0, e.State().Counters.Remote)

	// Floors at zero.
	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Decrement))
	assert.Equal(t, 0, e.State().Counters.Remote)
	assert.Nil(t, queue.Pending())
}

func TestCordDecrementNeverPrompts(t *testing.T) {
	queue := NewPromptQueue()
	e, items := newTestEditor(t, 2, queue)
	items.UpdateItemProperty(0, quote.FieldMotor, quote.MotorSet)
	enterMode(t, e, TabDrive, ModeCord)
	assert.Equal(t, 0, e.State().Counters.Cord)

	require.NoError(t, e.HandleCounterChange(pricing.KindCord, Increment))
	require.NoError(t, e.HandleCounterChange(pricing.KindCord, Decrement))
	assert.Nil(t, queue.Pending())
	assert.Equal(t, 0, e.State().Counters.Cord)
}

func TestCounterIgnoredOutsideItsMode(t *testing.T) {
	e, _ := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDrive, ModeCharger)

	require.NoError(t, e.HandleCounterChange(pricing.KindRemote, Increment))
	assert.Equal(t, 0, e.State().Counters.Remote)

	require.NoError(t, e.HandleCounterChange(pricing.KindCharger, Increment))
	assert.Equal(t, 1, e.State().Counters.Charger)
}

func TestDriveModeHint(t *testing.T) {
	e, _ := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDrive, ModeCharger)

	st := e.State()
	assert.Equal(t, NoticeInfo, st.Notice.Level)
	assert.Equal(t, "Click + or - to increase or decrease the quantity of chargers.", st.Notice.Message)
}

func TestWinderOnMotorRowNeedsConfirmation(t *testing.T) {
	queue := NewPromptQueue()
	e, items := newTestEditor(t, 3, queue)
	items.UpdateItemProperty(1, quote.FieldMotor, quote.MotorSet)
	enterMode(t, e, TabDrive, ModeWinder)

	// Plain row flips immediately.
	require.NoError(t, e.HandleCellClick(0, ColWinder))
	item, _ := items.Item(0)
	assert.Equal(t, quote.WinderSet, item.Winder)
	assert.Nil(t, queue.Pending())

	require.NoError(t, e.HandleCellClick(1, ColWinder))
	prompt := queue.Pending()
	require.NotNil(t, prompt)
	assert.Equal(t, MsgMotorToWinder, prompt.Message)
	item, _ = items.Item(1)
	assert.Equal(t, quote.WinderNone, item.Winder)

	queue.Resolve(true)
	item, _ = items.Item(1)
	assert.Equal(t, quote.WinderSet, item.Winder)
	assert.Equal(t, quote.MotorNone, item.Motor)

	// Leaving the mode prices one winder and no motor.
	require.NoError(t, e.HandleModeToggle(TabDrive, ModeWinder))
	st := e.State()
	assert.Equal(t, 2, st.Drive.Line(pricing.KindWinder).Count)
	assert.Equal(t, 0, st.Drive.Line(pricing.KindMotor).Count)
	assert.Equal(t, 0.0, st.Drive.Line(pricing.KindMotor).Price)
}

func TestMotorOnWinderRowAccepted(t *testing.T) {
	e, items := newTestEditor(t, 2, AutoConfirmer(true))
	items.UpdateItemProperty(0, quote.FieldWinder, quote.WinderSet)
	enterMode(t, e, TabDrive, ModeMotor)

	require.NoError(t, e.HandleCellClick(0, ColMotor))
	item, _ := items.Item(0)
	assert.Equal(t, quote.MotorSet, item.Motor)
	assert.Equal(t, quote.WinderNone, item.Winder)
}

func TestMotorOnWinderRowDeclined(t *testing.T) {
	var asked []string
	confirm := ConfirmerFunc(func(message string, onConfirm, onCancel func()) {
		asked = append(asked, message)
		onCancel()
	})
	e, items := newTestEditor(t, 2, confirm)
	items.UpdateItemProperty(0, quote.FieldWinder, quote.WinderSet)
	enterMode(t, e, TabDrive, ModeMotor)

	require.NoError(t, e.HandleCellClick(0, ColMotor))
	assert.Equal(t, []string{MsgWinderToMotor}, asked)
	item, _ := items.Item(0)
	assert.Equal(t, quote.MotorNone, item.Motor)
}

func TestWrongColumnIgnoredInDriveMode(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDrive, ModeWinder)

	require.NoError(t, e.HandleCellClick(0, ColMotor))
	require.NoError(t, e.HandleCellClick(0, ColLocation))
	item, _ := items.Item(0)
	assert.True(t, item.IsEmpty())
}

func TestTabSwitchFromDriveRecalculates(t *testing.T) {
	e, _ := newTestEditor(t, 2, nil)
	enterMode(t, e, TabDrive, ModeMotor)
	require.NoError(t, e.HandleCellClick(0, ColMotor))
	assert.Equal(t, 0.0, e.State().Drive.GrandTotal)

	require.NoError(t, e.ActivateTab(TabDualChain))
	st := e.State()
	assert.Equal(t, TabDualChain, st.Session.Tab)
	assert.Equal(t, ModeNone, st.Session.Mode)
	assert.Equal(t, 100.0, st.Drive.GrandTotal)
	assert.Equal(t, 100.0, st.AccessoriesTotal, "activation picks up drive prices")
	assert.Equal(t, VisibleColumns(TabDualChain), st.VisibleColumns)
}

func TestTabSwitchBlockedByInvalidDual(t *testing.T) {
	e, _ := newTestEditor(t, 4, nil)
	enterMode(t, e, TabDualChain, ModeDual)
	require.NoError(t, e.HandleCellClick(0, ColDual))

	require.NoError(t, e.ActivateTab(TabLocation))
	st := e.State()
	assert.Equal(t, TabDualChain, st.Session.Tab)
	assert.Equal(t, ModeDual, st.Session.Mode)
	assert.Equal(t, MsgDualOddCount, st.Notice.Message)
}

func TestTabSwitchClearsTarget(t *testing.T) {
	e, _ := newTestEditor(t, 3, nil)
	enterMode(t, e, TabLocation, ModeLocationEdit)
	require.NoError(t, e.HandleTextInput("half typed"))

	require.NoError(t, e.ActivateTab(TabOptions))
	st := e.State()
	assert.Equal(t, Session{Tab: TabOptions}, st.Session)
}

func TestModeToggleForInactiveTabIgnored(t *testing.T) {
	e, _ := newTestEditor(t, 2, nil)
	require.NoError(t, e.HandleModeToggle(TabDrive, ModeWinder))
	assert.Equal(t, ModeNone, e.State().Session.Mode)

	require.NoError(t, e.ActivateTab(TabDrive))
	require.NoError(t, e.HandleModeToggle(TabDualChain, ModeWinder))
	assert.Equal(t, ModeNone, e.State().Session.Mode)
}

func TestOptionsCycle(t *testing.T) {
	e, items := newTestEditor(t, 3, nil)
	enterMode(t, e, TabOptions, ModeOptionsEdit)

	require.NoError(t, e.HandleCellClick(1, ColRoll))
	require.NoError(t, e.HandleCellClick(1, ColRoll))
	require.NoError(t, e.HandleCellClick(2, ColSide))
	require.NoError(t, e.HandleCellClick(3, ColSide))

	got := items.Items()
	assert.Equal(t, quote.RollOver, got[1].Roll)
	assert.Equal(t, quote.SideLeft, got[2].Side)
	assert.True(t, got[3].IsEmpty())

	require.NoError(t, e.HandleBatchCycle(ColSide))
	got = items.Items()
	for row := 0; row < 3; row++ {
		assert.Equal(t, quote.SideLeft, got[row].Side, "row %d", row)
	}
	assert.Equal(t, quote.SideNone, got[3].Side)
}

func TestBatchCycleNeedsOptionsMode(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	require.NoError(t, e.ActivateTab(TabOptions))
	require.NoError(t, e.HandleBatchCycle(ColRoll))
	for _, item := range items.Items() {
		assert.Equal(t, quote.RollNone, item.Roll)
	}
}

func TestClickWithNoModeIgnored(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	before := e.State()

	require.NoError(t, e.HandleCellClick(0, ColLocation))
	require.NoError(t, e.HandleTextConfirm("x"))

	assert.Equal(t, before, e.State())
	assert.True(t, items.Items()[0].IsEmpty())
}

func TestPricingFaultPropagates(t *testing.T) {
	failing := pricing.ServiceFunc(func(string, pricing.Kind, pricing.Params) (float64, error) {
		return 0, errTest
	})
	e := New(quote.NewBlankStore("roller", 2), failing, nil, nil)

	err := e.RecalculateDrive()
	require.Error(t, err)
	assert.True(t, IsPricingError(err))
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, AccessorySummary{}, e.State().Drive, "nothing written on failure")

	require.NoError(t, e.ActivateTab(TabDualChain))
	err = e.HandleModeToggle(TabDualChain, ModeDual)
	assert.True(t, IsPricingError(err))
}

func TestUnknownProductIsPricingFault(t *testing.T) {
	e := New(quote.NewBlankStore("shutter", 1), testTable(t), nil, nil)
	err := e.RecalculateDrive()
	assert.True(t, IsPricingError(err))
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
}

func TestActivationRestoresDualPriceFromQuote(t *testing.T) {
	e, items := newTestEditor(t, 2, nil)
	items.SetAccessoryCost("dual", 21)

	require.NoError(t, e.ActivateTab(TabDualChain))
	st := e.State()
	assert.Equal(t, 21.0, st.DualPrice)
	assert.Equal(t, 21.0, st.AccessoriesTotal)
}

func TestVisibleColumnsPerTab(t *testing.T) {
	e, _ := newTestEditor(t, 1, nil)
	for _, tab := range Tabs {
		require.NoError(t, e.ActivateTab(tab))
		assert.Equal(t, VisibleColumns(tab), e.State().VisibleColumns, string(tab))
	}
	assert.Equal(t, []Column{ColSequence, ColFabric, ColLocation, ColWinder, ColMotor}, VisibleColumns(TabDrive))
}

func intPtr(n int) *int { return &n }
