// Package storage provides the object-store port used by the save pipeline.
// Uploads never fail the caller: every outcome is reported as an UploadResult
// so a partial save can still complete and describe itself.
package storage

import "context"

// UploadKind classifies an upload outcome. Skipped covers expected soft
// failures (missing bucket or credentials); Failed covers provider errors.
type UploadKind string

const (
	UploadUploaded UploadKind = "uploaded"
	UploadSkipped  UploadKind = "skipped"
	UploadFailed   UploadKind = "failed"
)

// UploadResult describes one upload attempt.
type UploadResult struct {
	Kind UploadKind
	// Location is the resource URI when Kind is UploadUploaded.
	Location string
	// Detail is the human-readable skip or failure explanation otherwise.
	Detail string
}

// OK reports whether the artifact actually landed in object storage.
func (r UploadResult) OK() bool {
	return r.Kind == UploadUploaded
}

// String returns the value recorded in status summaries and the relational
// record: the URI on success, the explanation otherwise.
func (r UploadResult) String() string {
	if r.OK() {
		return r.Location
	}
	return r.Detail
}

// Uploaded builds a successful result.
func Uploaded(location string) UploadResult {
	return UploadResult{Kind: UploadUploaded, Location: location}
}

// Skipped builds a soft-failure result (configuration absence).
func Skipped(detail string) UploadResult {
	return UploadResult{Kind: UploadSkipped, Detail: detail}
}

// Failed builds a provider-failure result.
func Failed(detail string) UploadResult {
	return UploadResult{Kind: UploadFailed, Detail: detail}
}

// ObjectStore uploads local files under derived keys. Implementations must
// not return errors; all failure modes degrade to result kinds.
type ObjectStore interface {
	Upload(ctx context.Context, localPath, key string) UploadResult
}
