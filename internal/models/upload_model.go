package models

// UploadPhase is the state of a single attachment operation. A task moves
// from in_progress to exactly one terminal phase; failed tasks are not
// retried, the caller starts a new one.
type UploadPhase string

const (
	UploadPhaseInProgress UploadPhase = "in_progress"
	UploadPhaseSucceeded  UploadPhase = "succeeded"
	UploadPhaseFailed     UploadPhase = "failed"
)

func (p UploadPhase) Terminal() bool {
	return p == UploadPhaseSucceeded || p == UploadPhaseFailed
}

// UploadStatusResponse reports the phase of the attachment task keyed by its
// target entity.
type UploadStatusResponse struct {
	TargetID string      `json:"targetId"`
	Phase    UploadPhase `json:"phase"`
	URL      string      `json:"url,omitempty"`
	Error    string      `json:"error,omitempty"`
}
