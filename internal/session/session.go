package session

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"slidegen/internal/domain"
	"slidegen/internal/export"
	"slidegen/internal/generator"
)

// Status is the phase of the content request lifecycle. Exactly one value
// holds at a time.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// clipboardErrorMessage is shown when the platform clipboard write fails.
const clipboardErrorMessage = "Failed to copy content to clipboard."

// toastDuration is how long the copy confirmation stays visible. A new copy
// within the window restarts it rather than stacking.
const toastDuration = 2 * time.Second

// View is a point-in-time snapshot of the session for rendering.
type View struct {
	Status       Status
	Content      *domain.SlideContent
	ErrorDetail  string
	PreviewURL   string
	ToastVisible bool
	// ToastMillis is the toast window length, rendered into the page so the
	// client refresh delay always follows the server's window.
	ToastMillis int64
}

// Recorder persists resolved generations. Implemented by store.GenerationStore.
type Recorder interface {
	Record(ctx context.Context, gen *domain.Generation) (*domain.Generation, error)
}

// Manager owns the upload -> request -> display -> copy state machine. A new
// image submission supersedes any in-flight request: each request carries a
// generation token and a resolving request whose token no longer matches is
// discarded, so a stale response never clobbers a newer one.
type Manager struct {
	generator generator.ContentGenerator
	clipboard export.Clipboard
	recorder  Recorder
	model     string
	logger    *slog.Logger
	toastTTL  time.Duration

	mu         sync.Mutex
	status     Status
	content    *domain.SlideContent
	errDetail  string
	previewURL string
	toastShown bool
	toastTimer *time.Timer
	toastEpoch uint64
	generation uint64
}

func NewManager(gen generator.ContentGenerator, cb export.Clipboard, rec Recorder, model string, logger *slog.Logger) *Manager {
	return &Manager{
		generator: gen,
		clipboard: cb,
		recorder:  rec,
		model:     model,
		logger:    logger,
		toastTTL:  toastDuration,
		status:    StatusIdle,
	}
}

// SubmitImage runs image intake: prior content and error are cleared, the
// status resets, and a new content request is issued immediately. The
// returned channel closes when that request resolves (whether or not its
// result is still current); callers may wait on it or ignore it.
func (m *Manager) SubmitImage(ctx context.Context, imageData []byte, mimeType, storageKey string) <-chan struct{} {
	m.mu.Lock()
	m.status = StatusIdle
	m.content = nil
	m.errDetail = ""
	m.previewURL = "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(imageData)
	m.generation++
	gen := m.generation
	m.status = StatusLoading
	m.mu.Unlock()

	m.logger.Info("content request issued", "generation", gen, "mime_type", mimeType, "bytes", len(imageData))

	done := make(chan struct{})
	// The request outlives the upload HTTP request if the client goes away;
	// nothing cancels it once issued.
	reqCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		m.run(reqCtx, gen, imageData, mimeType, storageKey)
	}()
	return done
}

func (m *Manager) run(ctx context.Context, gen uint64, imageData []byte, mimeType, storageKey string) {
	content, err := m.generator.Generate(ctx, bytes.NewReader(imageData), mimeType)

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		m.logger.Info("discarding stale content response", "generation", gen, "current", m.generation)
		return
	}
	if err != nil {
		m.status = StatusError
		m.errDetail = err.Error()
		m.content = nil
	} else {
		m.status = StatusSuccess
		m.content = content
		m.errDetail = ""
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Error("content request failed", "generation", gen, "error", err)
	} else {
		m.logger.Info("content request succeeded", "generation", gen, "title", content.Title, "bullets", len(content.BulletPoints))
	}

	m.record(ctx, content, err, mimeType, storageKey)
}

func (m *Manager) record(ctx context.Context, content *domain.SlideContent, genErr error, mimeType, storageKey string) {
	if m.recorder == nil {
		return
	}
	rec := &domain.Generation{
		Model:      m.model,
		MimeType:   mimeType,
		StorageKey: storageKey,
		Status:     string(StatusSuccess),
	}
	if genErr != nil {
		rec.Status = string(StatusError)
		rec.Error = genErr.Error()
	} else {
		rec.Title = content.Title
		rec.BulletPoints = content.BulletPoints
	}
	if _, err := m.recorder.Record(ctx, rec); err != nil {
		m.logger.Error("failed to record generation", "error", err)
	}
}

// CopyToClipboard serializes the current slide content and writes it to the
// system clipboard. It is valid only in the success state. On success the
// confirmation toast shows for the toast window; on failure the session drops
// to the error state and the displayed content is discarded.
func (m *Manager) CopyToClipboard(ctx context.Context) error {
	m.mu.Lock()
	if m.status != StatusSuccess || m.content == nil {
		m.mu.Unlock()
		return fmt.Errorf("no slide content to copy")
	}
	text := export.Format(m.content)
	gen := m.generation
	m.mu.Unlock()

	err := m.clipboard.Write(ctx, text)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		// A new image superseded this copy while the write was in flight.
		return err
	}
	if err != nil {
		m.logger.Error("clipboard write failed", "error", err)
		m.status = StatusError
		m.errDetail = clipboardErrorMessage
		m.content = nil
		return err
	}

	m.showToastLocked()
	return nil
}

// showToastLocked turns the toast on and (re)arms its expiry timer. Callers
// must hold mu. Stop cannot cancel a timer whose callback has already fired
// and is waiting on mu, so each arming carries an epoch and an expiry only
// clears the toast if its epoch is still current.
func (m *Manager) showToastLocked() {
	m.toastShown = true
	m.toastEpoch++
	epoch := m.toastEpoch
	if m.toastTimer != nil {
		m.toastTimer.Stop()
	}
	m.toastTimer = time.AfterFunc(m.toastTTL, func() {
		m.mu.Lock()
		if epoch == m.toastEpoch {
			m.toastShown = false
		}
		m.mu.Unlock()
	})
}

// Snapshot returns the current view state.
func (m *Manager) Snapshot() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return View{
		Status:       m.status,
		Content:      m.content,
		ErrorDetail:  m.errDetail,
		PreviewURL:   m.previewURL,
		ToastVisible: m.toastShown,
		ToastMillis:  m.toastTTL.Milliseconds(),
	}
}
