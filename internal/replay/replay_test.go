package replay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
)

const motorScript = `
product: roller
rows: 3
steps:
  - op: activateTab
    tab: driveAccessories
  - op: modeToggle
    mode: motor
  - op: cellClick
    row: 0
    column: motor
  - op: modeToggle
    mode: remote
  - op: counterChange
    kind: remote
    direction: subtract
  - op: confirmReply
    accept: false
expect:
  tab: driveAccessories
  mode: remote
  drive_total: 250
  counters:
    remote: 1
`

func run(t *testing.T, src string, answer AnswerFunc) (*Script, *Report, error) {
	t.Helper()
	script, err := ParseScript([]byte(src))
	require.NoError(t, err)

	prompts := editor.NewPromptQueue()
	ed := editor.New(script.NewStore("roller", 5), pricing.DefaultTable(), nil, prompts)
	report, err := NewRunner(ed, prompts, answer).Run(context.Background(), script)
	return script, report, err
}

func TestRunMotorScript(t *testing.T) {
	script, report, err := run(t, motorScript, nil)
	require.NoError(t, err)
	require.Len(t, report.Steps, 6)

	assert.NoError(t, script.Expect.Check(report.Final))
	assert.False(t, report.Failed())

	prompted := report.Steps[4]
	assert.Equal(t, editor.MsgZeroWithMotors(pricing.KindRemote), prompted.Prompt)
	assert.Nil(t, prompted.Answer, "prompt answered by the next step")

	reply := report.Steps[5]
	require.NotNil(t, reply.Answer)
	assert.False(t, *reply.Answer)
}

func TestUnansweredPromptUsesAnswerFunc(t *testing.T) {
	src := `
rows: 2
steps:
  - op: activateTab
    tab: driveAccessories
  - op: modeToggle
    mode: motor
  - op: cellClick
    row: 0
    column: motor
  - op: modeToggle
    mode: winder
  - op: cellClick
    row: 0
    column: winder
`
	var asked []string
	_, report, err := run(t, src, func(message string) bool {
		asked = append(asked, message)
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []string{editor.MsgMotorToWinder}, asked)
	last := report.Steps[len(report.Steps)-1]
	require.NotNil(t, last.Answer)
	assert.True(t, *last.Answer)
}

func TestStrayReplyStops(t *testing.T) {
	src := `
steps:
  - op: activateTab
    tab: fabric
  - op: confirmReply
    accept: true
  - op: activateTab
    tab: options
`
	_, report, err := run(t, src, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedReply))
	assert.Len(t, report.Steps, 1)
}

func TestRunHonoursContext(t *testing.T) {
	script, err := ParseScript([]byte(motorScript))
	require.NoError(t, err)

	prompts := editor.NewPromptQueue()
	ed := editor.New(script.NewStore("roller", 5), pricing.DefaultTable(), nil, prompts)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRunner(ed, prompts, nil).Run(ctx, script)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no steps", "rows: 2\n"},
		{"bad yaml", "steps: [\n"},
		{"negative rows", "rows: -1\nsteps:\n  - op: textInput\n"},
		{"unknown op", "steps:\n  - op: explode\n"},
		{"reply without answer", "steps:\n  - op: confirmReply\n"},
		{"bad chain item", "items:\n  - location: Den\n    chain: 0\nsteps:\n  - op: textInput\n"},
		{"click without row", "steps:\n  - op: cellClick\n    column: dual\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestScriptNewStore(t *testing.T) {
	s, err := ParseScript([]byte("items:\n  - location: Den\nsteps:\n  - op: textInput\n"))
	require.NoError(t, err)

	store := s.NewStore("venetian", 5)
	assert.Equal(t, "venetian", store.ProductType())
	assert.Equal(t, 2, store.Len(), "one item plus the blank row")

	s, err = ParseScript([]byte("product: roller\nsteps:\n  - op: textInput\n"))
	require.NoError(t, err)
	store = s.NewStore("venetian", 4)
	assert.Equal(t, "roller", store.ProductType())
	assert.Equal(t, 5, store.Len())
}

func TestExpectCheckReportsEveryMismatch(t *testing.T) {
	total := 100.0
	e := &Expect{
		Tab:        "fabric",
		DriveTotal: &total,
		Counters:   map[string]int{"cord": 2, "bracket": 1},
	}
	err := e.Check(editor.State{Session: editor.NewSession()})
	require.Error(t, err)
	for _, want := range []string{"tab", "drive_total", "counters.cord", "bracket"} {
		assert.Contains(t, err.Error(), want)
	}

	var none *Expect
	assert.NoError(t, none.Check(editor.State{}))
}
