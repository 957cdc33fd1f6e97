package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/download"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// RecordDownloadInput describes a successfully finished download.
type RecordDownloadInput struct {
	// Path is the absolute path of the written file.
	Path string
	// Filename defaults to the base name of Path.
	Filename string
}

// RecordDownloadOutput reports what was persisted.
type RecordDownloadOutput struct {
	Record entity.DownloadRecord
	// Appended is false when the path was already logged.
	Appended bool
}

// RecordDownloadUseCase appends finished downloads to the downloads log.
// Duplicate finish callbacks for the same path are recorded once.
type RecordDownloadUseCase struct {
	log port.DownloadLog
	now func() time.Time
}

// NewRecordDownloadUseCase creates a new RecordDownloadUseCase.
func NewRecordDownloadUseCase(log port.DownloadLog) *RecordDownloadUseCase {
	return &RecordDownloadUseCase{log: log, now: time.Now}
}

// Execute appends a record for the finished download.
func (uc *RecordDownloadUseCase) Execute(ctx context.Context, input RecordDownloadInput) (*RecordDownloadOutput, error) {
	filename := input.Filename
	if filename == "" {
		filename = download.FilenameFromDestination(input.Path)
	}

	rec := entity.DownloadRecord{
		Timestamp:    entity.FormatTimestamp(uc.now()),
		Filename:     filename,
		AbsolutePath: input.Path,
	}

	appended, err := uc.log.Append(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("record download %s: %w", input.Path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", input.Path).
		Bool("appended", appended).
		Msg("download recorded")

	return &RecordDownloadOutput{Record: rec, Appended: appended}, nil
}
