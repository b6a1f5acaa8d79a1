package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"time"

	ierr "github.com/carryint/carryint/internal/errors"
)

// BuildSnapshot produces the pretty-printed JSON backup of the dataset.
// Decoding it back yields the exact original collections.
func BuildSnapshot(ds Dataset) ([]byte, error) {
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to serialize the backup snapshot").
			Mark(ierr.ErrExport)
	}
	return raw, nil
}

// BuildArchive bundles the JSON snapshot and the workbook into a ZIP
// archive stamped with the given instant. The archive is assembled fully
// in memory and either returned whole or not at all; a failure in any
// step surfaces as a single export error with no partial artifact.
//
// Compression is the one long-running step of the whole core, so it
// checks the context before starting; there is no cancellation once
// compression is underway.
func BuildArchive(ctx context.Context, ds Dataset, now time.Time) ([]byte, error) {
	snapshot, err := BuildSnapshot(ds)
	if err != nil {
		return nil, err
	}

	workbook, err := BuildWorkbook(ds)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Export cancelled before archiving").
			Mark(ierr.ErrExport)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{name: snapshotEntryName(now), data: snapshot},
		{name: workbookEntryName(now), data: workbook},
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, archiveErr(err)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, archiveErr(err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, archiveErr(err)
	}
	return buf.Bytes(), nil
}

func archiveErr(err error) error {
	return ierr.WithError(err).
		WithHint("Failed to generate the backup archive").
		Mark(ierr.ErrExport)
}
