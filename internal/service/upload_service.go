package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"petslife-service/internal/models"
)

var ErrUploadFailed = errors.New("image upload failed")

// ObjectStore accepts a binary payload under a caller-chosen path and, on
// success, yields a stable retrievable address for it.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// LinkFunc merges the stored address back into the target record (card
// photo or profile avatar) once the transfer has completed.
type LinkFunc func(ctx context.Context, url string) error

// UploadTask is the transient state of one attachment operation. It starts
// in_progress and ends in exactly one terminal phase; there is no retry, a
// failed task is replaced by a brand-new one.
type UploadTask struct {
	TargetID string

	mu    sync.Mutex
	phase models.UploadPhase
	url   string
	err   error
	done  chan struct{}
}

func (t *UploadTask) Phase() models.UploadPhase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Done closes once the task reaches a terminal phase.
func (t *UploadTask) Done() <-chan struct{} {
	return t.done
}

// Result reports the stored address, or the transfer error for failed
// tasks. Only meaningful after Done.
func (t *UploadTask) Result() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.url, t.err
}

func (t *UploadTask) Status() models.UploadStatusResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	status := models.UploadStatusResponse{
		TargetID: t.TargetID,
		Phase:    t.phase,
		URL:      t.url,
	}
	if t.err != nil {
		status.Error = t.err.Error()
	}
	return status
}

func (t *UploadTask) succeed(url string) {
	t.mu.Lock()
	t.phase = models.UploadPhaseSucceeded
	t.url = url
	t.mu.Unlock()
	close(t.done)
}

func (t *UploadTask) fail(err error) {
	t.mu.Lock()
	t.phase = models.UploadPhaseFailed
	t.err = err
	t.mu.Unlock()
	close(t.done)
}

// UploadService runs the attachment pipeline: stream the binary to the
// object store, then link the resulting address into the target record.
// Tasks are keyed by target entity so concurrent uploads for different
// entities do not corrupt each other's loading state.
type UploadService struct {
	store    ObjectStore
	sessions *SessionRegistry

	mu    sync.Mutex
	tasks map[string]*UploadTask
}

func NewUploadService(store ObjectStore, sessions *SessionRegistry) *UploadService {
	return &UploadService{
		store:    store,
		sessions: sessions,
		tasks:    make(map[string]*UploadTask),
	}
}

// Start launches an attachment for targetID on behalf of userID and returns
// immediately with the in_progress task. The transfer is fire-and-forget:
// there is no cancellation or timeout, the task stays in_progress until the
// store delivers a terminal outcome. The payload is closed once the transfer
// returns, whichever way it went.
func (s *UploadService) Start(userID, targetID, objectName string, payload io.ReadCloser, size int64, contentType string, link LinkFunc) *UploadTask {
	task := &UploadTask{
		TargetID: targetID,
		phase:    models.UploadPhaseInProgress,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	s.tasks[targetID] = task
	s.mu.Unlock()

	session := s.sessions.Session(userID)
	session.SetLoading(targetID, true)

	go func() {
		// the originating request context dies with the response; the
		// transfer keeps its own
		ctx := context.Background()

		url, err := s.store.Upload(ctx, objectName, payload, size, contentType)
		payload.Close()
		if err != nil {
			slog.Error("Upload transfer failed", "targetId", targetID, "object", objectName, "error", err)
			session.SetLoading(targetID, false)
			task.fail(errors.Join(ErrUploadFailed, err))
			return
		}

		if err := link(ctx, url); err != nil {
			slog.Error("Failed to link uploaded address", "targetId", targetID, "url", url, "error", err)
			session.SetLoading(targetID, false)
			task.fail(errors.Join(ErrUploadFailed, err))
			return
		}

		session.SetLoading(targetID, false)
		session.MarkDirty()
		task.succeed(url)
	}()

	return task
}

// Task returns the most recent task for the target entity, if any. Tasks in
// a terminal phase are evicted on read, so the registry only holds tasks
// still worth polling.
func (s *UploadService) Task(targetID string) (*UploadTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[targetID]
	if ok && task.Phase().Terminal() {
		delete(s.tasks, targetID)
	}
	return task, ok
}
