package importer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecord struct{ id string }

func (r *stubRecord) Keys() []string { return []string{"number|" + r.id} }
func (r *stubRecord) Label() string  { return r.id }

// stubStore counts calls and fails on demand.
type stubStore struct {
	bulkErr    error
	failCreate map[string]error
	failOther  map[string]error

	bulkCalls int
	created   []string
	updated   []string
	restored  []string
}

func (s *stubStore) CreateBulk(_ context.Context, recs []Record) error {
	s.bulkCalls++
	if s.bulkErr != nil {
		return s.bulkErr
	}
	for _, r := range recs {
		s.created = append(s.created, r.Label())
	}
	return nil
}

func (s *stubStore) Create(_ context.Context, rec Record) error {
	if err := s.failCreate[rec.Label()]; err != nil {
		return err
	}
	s.created = append(s.created, rec.Label())
	return nil
}

func (s *stubStore) Update(_ context.Context, id string, rec Record) error {
	if err := s.failOther[rec.Label()]; err != nil {
		return err
	}
	s.updated = append(s.updated, id)
	return nil
}

func (s *stubStore) Restore(_ context.Context, id string, rec Record) error {
	if err := s.failOther[rec.Label()]; err != nil {
		return err
	}
	s.restored = append(s.restored, id)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func createOutcomes(ids ...string) []Outcome {
	out := make([]Outcome, 0, len(ids))
	for i, id := range ids {
		out = append(out, Outcome{Row: i + 2, Status: StatusCreated, Record: &stubRecord{id: id}})
	}
	return out
}

func TestBatchWriterChunksCreates(t *testing.T) {
	store := &stubStore{}
	w := NewBatchWriter(store, 2, testLogger())

	stats := w.Write(context.Background(), createOutcomes("a", "b", "c", "d", "e"))

	assert.Equal(t, 5, stats.Created)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 3, store.bulkCalls)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, store.created)
}

func TestBatchWriterFallsBackPerRecord(t *testing.T) {
	store := &stubStore{
		bulkErr:    errors.New("duplicate key"),
		failCreate: map[string]error{"b": errors.New("duplicate key 'b'")},
	}
	w := NewBatchWriter(store, 10, testLogger())

	stats := w.Write(context.Background(), createOutcomes("a", "b", "c"))

	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, stats.Errors, 1)
	assert.Equal(t, "b", stats.Errors[0].Value)
	assert.Equal(t, 3, stats.Errors[0].Row)
	assert.Equal(t, []string{"a", "c"}, store.created)
}

func TestBatchWriterUpdatesAndRestoresIndividually(t *testing.T) {
	store := &stubStore{failOther: map[string]error{"bad": errors.New("gone")}}
	w := NewBatchWriter(store, 2, testLogger())

	outcomes := []Outcome{
		{Row: 2, Status: StatusUpdated, ExistingID: "id-1", Record: &stubRecord{id: "u1"}},
		{Row: 3, Status: StatusRestored, ExistingID: "id-2", Record: &stubRecord{id: "r1"}},
		{Row: 4, Status: StatusUpdated, ExistingID: "id-3", Record: &stubRecord{id: "bad"}},
		{Row: 5, Status: StatusSkippedDuplicate, Record: &stubRecord{id: "skip"}},
		{Row: 6, Status: StatusRejected},
	}
	stats := w.Write(context.Background(), outcomes)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.Restored)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, []string{"id-1"}, store.updated)
	assert.Equal(t, []string{"id-2"}, store.restored)
	assert.Equal(t, 0, store.bulkCalls, "skips and rejections never reach the store")
}

func TestBatchWriterDefaultChunkSize(t *testing.T) {
	w := NewBatchWriter(&stubStore{}, 0, testLogger())
	assert.Equal(t, 500, w.chunkSize)
}
