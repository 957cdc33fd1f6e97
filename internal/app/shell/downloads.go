package shell

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/domain/download"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// downloadAttempt tracks one download between its request and its completion.
type downloadAttempt struct {
	id          string
	slot        entity.Slot
	filename    string
	sourceURL   string
	destination string
}

// DownloadInterceptor rewrites download destinations of content panes,
// records finished downloads and broadcasts their progress.
type DownloadInterceptor struct {
	host    port.Host
	emitter port.EventEmitter
	prepare *usecase.PrepareDownloadUseCase
	record  *usecase.RecordDownloadUseCase
	handler port.DownloadEventHandler

	// mu also serializes destination resolution so that concurrent requests
	// never resolve to the same path.
	mu       sync.Mutex
	attempts map[string]downloadAttempt // keyed by attempt id
	done     map[string]struct{}        // destinations already finished
}

// NewDownloadInterceptor creates a DownloadInterceptor. prepare, record and
// handler may be nil: downloads then keep the host destination, go unrecorded
// or are not reported, respectively.
func NewDownloadInterceptor(
	host port.Host,
	emitter port.EventEmitter,
	prepare *usecase.PrepareDownloadUseCase,
	record *usecase.RecordDownloadUseCase,
	handler port.DownloadEventHandler,
) *DownloadInterceptor {
	return &DownloadInterceptor{
		host:     host,
		emitter:  emitter,
		prepare:  prepare,
		record:   record,
		handler:  handler,
		attempts: make(map[string]downloadAttempt),
		done:     make(map[string]struct{}),
	}
}

// Hooks returns the download hooks of the content pane in slot.
func (d *DownloadInterceptor) Hooks(ctx context.Context, slot entity.Slot) port.PaneHooks {
	// Hooks fire long after the creating call has returned.
	ctx = logging.WithSlot(context.WithoutCancel(ctx), int(slot))
	return port.PaneHooks{
		OnDownloadRequested: func(req port.DownloadRequest) string {
			return d.requested(ctx, slot, req)
		},
		OnDownloadFinished: func(res port.DownloadResult) {
			d.finished(ctx, slot, res)
		},
	}
}

func (d *DownloadInterceptor) requested(ctx context.Context, slot entity.Slot, req port.DownloadRequest) string {
	att := downloadAttempt{
		id:          uuid.NewString(),
		slot:        slot,
		sourceURL:   req.SourceURL,
		destination: req.SuggestedPath,
		filename:    download.FilenameFromDestination(req.SuggestedPath),
	}
	ctx = logging.WithDownloadID(ctx, att.id)
	log := logging.FromContext(ctx)

	rewritten := ""
	d.mu.Lock()
	if d.prepare != nil {
		out, err := d.prepare.Execute(ctx, usecase.PrepareDownloadInput{
			SourceURL:     req.SourceURL,
			SuggestedPath: req.SuggestedPath,
			Reserved:      d.reservedLocked,
		})
		if err != nil {
			log.Warn().Err(err).Str("url", req.SourceURL).Msg("keeping host download destination")
		} else {
			att.filename = out.Filename
			att.destination = out.DestinationPath
			rewritten = out.DestinationPath
		}
	}
	d.attempts[att.id] = att
	delete(d.done, att.destination)
	d.mu.Unlock()

	log.Info().Str("filename", att.filename).Str("destination", att.destination).Msg("download started")

	d.emit(ctx, port.EventDownloadStarted, port.FilenamePayload{Filename: att.filename})
	d.notify(ctx, port.DownloadEvent{
		Type:        port.DownloadEventStarted,
		ID:          att.id,
		Slot:        slot,
		Filename:    att.filename,
		Destination: att.destination,
		SourceURL:   att.sourceURL,
	})
	return rewritten
}

func (d *DownloadInterceptor) finished(ctx context.Context, slot entity.Slot, res port.DownloadResult) {
	att, ok := d.takeAttempt(res)
	if !ok {
		if d.alreadyFinished(res.Path) {
			logging.FromContext(ctx).Debug().Str("path", res.Path).Msg("duplicate download completion ignored")
			return
		}
		att = downloadAttempt{slot: slot, sourceURL: res.SourceURL, destination: res.Path}
	}
	if res.Path != "" {
		att.destination = res.Path
	}
	if att.filename == "" || (res.Path != "" && filepath.Base(res.Path) != att.filename) {
		att.filename = download.FilenameFromDestination(att.destination)
	}
	if att.id != "" {
		ctx = logging.WithDownloadID(ctx, att.id)
	}
	log := logging.FromContext(ctx)

	if res.Success {
		d.markFinished(att.destination)
	}

	if !res.Success {
		log.Warn().Str("filename", att.filename).Msg("download failed")
		d.emit(ctx, port.EventDownloadFailed, port.FilenamePayload{Filename: att.filename})
		d.notify(ctx, port.DownloadEvent{
			Type:        port.DownloadEventFailed,
			ID:          att.id,
			Slot:        slot,
			Filename:    att.filename,
			Destination: att.destination,
			SourceURL:   att.sourceURL,
		})
		return
	}

	if d.record != nil && att.destination != "" {
		if _, err := d.record.Execute(ctx, usecase.RecordDownloadInput{
			Path:     att.destination,
			Filename: att.filename,
		}); err != nil {
			log.Error().Err(err).Str("path", att.destination).Msg("failed to record download")
		}
	}

	pageURL, err := d.host.PaneURL(ctx, entity.ContentLabel(slot))
	if err != nil {
		pageURL = ""
	}

	log.Info().Str("filename", att.filename).Str("path", att.destination).Msg("download finished")

	d.emit(ctx, port.EventDownloadFinished, port.DownloadFinishedPayload{
		Filename:     att.filename,
		Slot:         int(slot),
		URL:          pageURL,
		AbsolutePath: att.destination,
	})
	d.notify(ctx, port.DownloadEvent{
		Type:        port.DownloadEventFinished,
		ID:          att.id,
		Slot:        slot,
		Filename:    att.filename,
		Destination: att.destination,
		SourceURL:   att.sourceURL,
	})
}

// takeAttempt removes and returns the attempt matching res, by destination
// first and by source URL when the host did not report a path.
func (d *DownloadInterceptor) takeAttempt(res port.DownloadResult) (downloadAttempt, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if res.Path != "" {
		for id, att := range d.attempts {
			if att.destination == res.Path {
				delete(d.attempts, id)
				return att, true
			}
		}
	}
	if res.SourceURL != "" {
		for id, att := range d.attempts {
			if att.sourceURL == res.SourceURL {
				delete(d.attempts, id)
				return att, true
			}
		}
	}
	return downloadAttempt{}, false
}

// reservedLocked reports whether an in-flight attempt owns path. d.mu must be held.
func (d *DownloadInterceptor) reservedLocked(path string) bool {
	for _, att := range d.attempts {
		if att.destination == path {
			return true
		}
	}
	return false
}

func (d *DownloadInterceptor) markFinished(path string) {
	if path == "" {
		return
	}
	d.mu.Lock()
	d.done[path] = struct{}{}
	d.mu.Unlock()
}

func (d *DownloadInterceptor) alreadyFinished(path string) bool {
	if path == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.done[path]
	return ok
}

// Pending returns the number of downloads still in flight.
func (d *DownloadInterceptor) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.attempts)
}

func (d *DownloadInterceptor) emit(ctx context.Context, event string, payload any) {
	if d.emitter == nil {
		return
	}
	if err := d.emitter.Emit(ctx, event, payload); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("event", event).Msg("event not delivered")
	}
}

func (d *DownloadInterceptor) notify(ctx context.Context, event port.DownloadEvent) {
	if d.handler != nil {
		d.handler.OnDownloadEvent(ctx, event)
	}
}
