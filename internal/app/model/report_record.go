package model

import "time"

// ReportRecord is the persisted metadata row for one save operation.
// AudioKey is always empty: the audio payload itself is never uploaded, by
// design. The storage key fields carry either a resource URI or the
// descriptive skip/failure string from the upload step.
type ReportRecord struct {
	ID               string
	Timestamp        time.Time
	AudioKey         string
	ReportKey        string
	Transcription    string
	FinalReport      string
	ImageDescription string
	TranscriptionKey string
	ImageDescKey     string
}
