package importer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Persister is the storage side of an import run. CreateBulk writes a
// whole chunk in one statement; the writer falls back to Create per
// record when a chunk fails.
type Persister interface {
	CreateBulk(ctx context.Context, recs []Record) error
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, id string, rec Record) error
	Restore(ctx context.Context, id string, rec Record) error
}

// WriteStats counts what actually reached the store.
type WriteStats struct {
	Created  int
	Updated  int
	Restored int
	Failed   int
	Errors   []RowError
}

// BatchWriter persists classified outcomes. Creates go in chunks so one
// bad record cannot sink the file: a failed chunk is retried record by
// record and only the offenders are reported. Updates and restores run
// individually since each targets a distinct existing row.
type BatchWriter struct {
	store     Persister
	chunkSize int
	log       *logrus.Logger
}

func NewBatchWriter(store Persister, chunkSize int, log *logrus.Logger) *BatchWriter {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &BatchWriter{store: store, chunkSize: chunkSize, log: log}
}

func (w *BatchWriter) Write(ctx context.Context, outcomes []Outcome) WriteStats {
	var stats WriteStats

	var creates []Outcome
	for _, o := range outcomes {
		switch o.Status {
		case StatusCreated:
			creates = append(creates, o)
		case StatusUpdated:
			if err := w.store.Update(ctx, o.ExistingID, o.Record); err != nil {
				stats.fail(o, err)
				w.log.WithError(err).WithField("row", o.Row).Warn("update failed")
			} else {
				stats.Updated++
			}
		case StatusRestored:
			if err := w.store.Restore(ctx, o.ExistingID, o.Record); err != nil {
				stats.fail(o, err)
				w.log.WithError(err).WithField("row", o.Row).Warn("restore failed")
			} else {
				stats.Restored++
			}
		}
	}

	for start := 0; start < len(creates); start += w.chunkSize {
		end := start + w.chunkSize
		if end > len(creates) {
			end = len(creates)
		}
		w.writeChunk(ctx, creates[start:end], &stats)
	}
	return stats
}

func (w *BatchWriter) writeChunk(ctx context.Context, chunk []Outcome, stats *WriteStats) {
	recs := make([]Record, len(chunk))
	for i, o := range chunk {
		recs[i] = o.Record
	}
	if err := w.store.CreateBulk(ctx, recs); err == nil {
		stats.Created += len(chunk)
		return
	} else {
		w.log.WithError(err).WithField("size", len(chunk)).Warn("bulk insert failed, retrying per record")
	}

	for _, o := range chunk {
		if err := w.store.Create(ctx, o.Record); err != nil {
			stats.fail(o, err)
			w.log.WithError(err).WithField("row", o.Row).Warn("insert failed")
		} else {
			stats.Created++
		}
	}
}

func (s *WriteStats) fail(o Outcome, err error) {
	s.Failed++
	s.Errors = append(s.Errors, RowError{
		Row:     o.Row,
		Value:   o.Record.Label(),
		Message: err.Error(),
	})
}
