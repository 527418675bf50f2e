// Package report holds the report lifecycle state threaded through the
// generation pipeline: derived texts, the append-only draft history, and the
// "latest report" resolution rule.
package report

import (
	"github.com/samber/lo"
)

// Role tags an entry in the report history.
type Role string

const (
	// RoleFeedback marks free-text revision feedback supplied by the user.
	RoleFeedback Role = "user-feedback"
	// RoleGeneratedReport marks a report draft produced by the generator.
	RoleGeneratedReport Role = "generated-report"
)

// NoReportSentinel is returned by LatestReport when no draft exists yet.
const NoReportSentinel = "No report generated yet."

// Message is one immutable entry in the report history.
type Message struct {
	Role Role
	Text string
}

// State is the per-request pipeline state. Stages take a State by value and
// return a new one; the history only ever grows.
type State struct {
	AudioPath string
	ImagePath string

	// TranscribedText is nil when no audio was supplied. An empty string is a
	// valid (empty) transcription.
	TranscribedText *string
	// ImageDescription is nil when no image was supplied.
	ImageDescription *string

	History []Message

	// PendingFeedback is set immediately before a revision call and consumed
	// by it.
	PendingFeedback string
}

// NewState returns an empty State for one incoming request or session.
func NewState() State {
	return State{}
}

// LatestReport resolves the current draft: the last history entry tagged
// RoleGeneratedReport. It never fails; with no draft it returns the sentinel.
func (s State) LatestReport() string {
	msg, _, found := lo.FindLastIndexOf(s.History, func(m Message) bool {
		return m.Role == RoleGeneratedReport
	})
	if !found {
		return NoReportSentinel
	}
	return msg.Text
}

// HasReport reports whether any generated draft exists in the history.
func (s State) HasReport() bool {
	return lo.SomeBy(s.History, func(m Message) bool {
		return m.Role == RoleGeneratedReport
	})
}

// WithGeneratedReport returns a copy of the state with text appended as a
// generated draft.
func (s State) WithGeneratedReport(text string) State {
	return s.appended(Message{Role: RoleGeneratedReport, Text: text})
}

// WithFeedback returns a copy of the state with text appended as user
// feedback and recorded as the pending feedback for the next revision.
func (s State) WithFeedback(text string) State {
	next := s.appended(Message{Role: RoleFeedback, Text: text})
	next.PendingFeedback = text
	return next
}

// appended copies the history so callers holding the previous state never
// observe later writes.
func (s State) appended(msg Message) State {
	history := make([]Message, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = append(history, msg)
	return s
}

// StringOrNil is a convenience for populating the optional derived-text
// fields.
func StringOrNil(value string) *string {
	return &value
}

// Deref returns the pointed-at string, or fallback when the pointer is nil.
func Deref(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
