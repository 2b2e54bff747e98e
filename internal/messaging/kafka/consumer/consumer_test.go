package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, context.Canceled
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeSummaries struct {
	initFn func(ctx context.Context, employeeID string) error
	ids    []string
}

func (f *fakeSummaries) InitSummary(ctx context.Context, employeeID string) error {
	f.ids = append(f.ids, employeeID)
	if f.initFn != nil {
		return f.initFn(ctx, employeeID)
	}
	return nil
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"event_type":"employee_created","employee_id":"EMP-000001"}`)},
			{Offset: 2, Value: []byte(`not json`)},
			{Offset: 3, Value: []byte(`{"event_type":"employee_created","employee_id":"EMP-000002"}`)},
		},
	}
	summaries := &fakeSummaries{
		initFn: func(ctx context.Context, employeeID string) error {
			if employeeID == "EMP-000002" {
				return errors.New("db down")
			}
			return nil
		},
	}

	ConsumeEmployeeLifecycle(ctx, reader, summaries, zap.NewNop())

	assert.Equal(t, []string{"EMP-000001", "EMP-000002"}, summaries.ids)
	// The failed init stays uncommitted.
	assert.Len(t, reader.committed, 2)
	assert.Equal(t, int64(1), reader.committed[0].Offset)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
}

func TestHandleEmployeeLifecycle_IgnoresOtherEventTypes(t *testing.T) {
	reader := &fakeReader{}
	summaries := &fakeSummaries{}

	handleEmployeeLifecycle(context.Background(), reader, summaries,
		kafkago.Message{Value: []byte(`{"event_type":"employee_deleted","employee_id":"EMP-1"}`)}, zap.NewNop())

	assert.Empty(t, summaries.ids)
	assert.Len(t, reader.committed, 1)
}

type failingReader struct {
	calls    int
	cancelAt int
	cancel   context.CancelFunc
}

func (f *failingReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.calls++
	if f.calls == f.cancelAt {
		f.cancel()
	}
	return kafkago.Message{}, errors.New("broker unreachable")
}

func (f *failingReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	return nil
}

func TestConsumeEmployeeLifecycle_BacksOffOnFetchErrors(t *testing.T) {
	prev := fetchRetryDelay
	fetchRetryDelay = 20 * time.Millisecond
	t.Cleanup(func() { fetchRetryDelay = prev })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader := &failingReader{cancelAt: 3, cancel: cancel}

	start := time.Now()
	ConsumeEmployeeLifecycle(ctx, reader, &fakeSummaries{}, zap.NewNop())

	assert.Equal(t, 3, reader.calls)
	assert.GreaterOrEqual(t, time.Since(start), 2*fetchRetryDelay)
}
