package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestReport_EmptyHistoryReturnsSentinel(t *testing.T) {
	state := NewState()

	assert.Equal(t, NoReportSentinel, state.LatestReport())
	assert.False(t, state.HasReport())
}

func TestLatestReport_LastGeneratedEntryWins(t *testing.T) {
	state := NewState().
		WithGeneratedReport("draft A").
		WithFeedback("tighten the lede").
		WithGeneratedReport("draft B")

	assert.Equal(t, "draft B", state.LatestReport())
}

func TestLatestReport_FeedbackAfterDraftDoesNotShadowIt(t *testing.T) {
	state := NewState().
		WithGeneratedReport("draft A").
		WithFeedback("add a quote from the mayor")

	assert.Equal(t, "draft A", state.LatestReport())
}

func TestWithGeneratedReport_AppendsWithoutMutatingPrior(t *testing.T) {
	first := NewState().WithGeneratedReport("draft A")
	second := first.WithGeneratedReport("draft B")

	// The earlier value still sees only its own history.
	assert.Len(t, first.History, 1)
	assert.Equal(t, "draft A", first.LatestReport())

	assert.Len(t, second.History, 2)
	assert.Equal(t, Message{Role: RoleGeneratedReport, Text: "draft A"}, second.History[0])
	assert.Equal(t, Message{Role: RoleGeneratedReport, Text: "draft B"}, second.History[1])
}

func TestWithFeedback_TagsRoleAndSetsPending(t *testing.T) {
	state := NewState().WithFeedback("make the tone more urgent")

	assert.Equal(t, "make the tone more urgent", state.PendingFeedback)
	assert.Equal(t, Message{Role: RoleFeedback, Text: "make the tone more urgent"}, state.History[0])
	assert.False(t, state.HasReport())
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "Not available.", Deref(nil, "Not available."))
	assert.Equal(t, "hello", Deref(StringOrNil("hello"), "Not available."))
	assert.Equal(t, "", Deref(StringOrNil(""), "Not available."))
}
