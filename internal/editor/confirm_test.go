package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptResolvesOnce(t *testing.T) {
	var confirmed, cancelled int
	q := NewPromptQueue()
	q.RequestConfirmation("sure?", func() { confirmed++ }, func() { cancelled++ })

	p := q.Pending()
	assert.Equal(t, "sure?", p.Message)

	p.Resolve(true)
	p.Resolve(true)
	p.Resolve(false)
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 0, cancelled)
}

func TestPromptQueueResolve(t *testing.T) {
	var answers []bool
	q := NewPromptQueue()
	assert.False(t, q.Resolve(true), "nothing pending")

	q.RequestConfirmation("a", func() { answers = append(answers, true) }, func() { answers = append(answers, false) })
	assert.True(t, q.Resolve(false))
	assert.Nil(t, q.Pending())
	assert.False(t, q.Resolve(true))
	assert.Equal(t, []bool{false}, answers)
}

func TestPromptQueueReplaceDeclinesPrevious(t *testing.T) {
	var log []string
	q := NewPromptQueue()
	q.RequestConfirmation("first", func() { log = append(log, "first yes") }, func() { log = append(log, "first no") })
	q.RequestConfirmation("second", func() { log = append(log, "second yes") }, func() { log = append(log, "second no") })

	assert.Equal(t, []string{"first no"}, log)
	assert.Equal(t, "second", q.Pending().Message)

	q.Cancel()
	assert.Equal(t, []string{"first no", "second no"}, log)
}

func TestAutoConfirmer(t *testing.T) {
	var got string
	AutoConfirmer(true).RequestConfirmation("m", func() { got = "yes" }, func() { got = "no" })
	assert.Equal(t, "yes", got)
	AutoConfirmer(false).RequestConfirmation("m", func() { got = "yes" }, func() { got = "no" })
	assert.Equal(t, "no", got)
}

func TestStoreReadYourWrites(t *testing.T) {
	s := NewStore()
	s.Dispatch(SetCount{Kind: "remote", Count: 3})
	assert.Equal(t, 3, s.State().Counters.Remote)

	s.Dispatch(ShowNotice{Level: NoticeInfo, Message: "one"})
	s.Dispatch(ShowNotice{Level: NoticeInfo, Message: "one"})
	assert.Equal(t, 2, s.State().Notice.Seq)

	st := s.State()
	st.VisibleColumns[0] = ColChain
	assert.Equal(t, ColSequence, s.State().VisibleColumns[0], "State returns a copy")
}
