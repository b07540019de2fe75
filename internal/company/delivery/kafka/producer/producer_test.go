package producer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"dashboard-srv/internal/company"
	kafkaDelivery "dashboard-srv/internal/company/delivery/kafka"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	mu   sync.Mutex
	msgs []pkgKafka.Message
	err  error
}

func (r *recordingProducer) Publish(_ context.Context, msg pkgKafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recordingProducer) Close() error       { return nil }
func (r *recordingProducer) HealthCheck() error { return nil }

func TestProducer_PublishesEvents(t *testing.T) {
	rec := &recordingProducer{}
	p := New(log.NewNop(), rec, Config{})

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	p.Report(context.Background(), company.Event{
		ID: "e1", Op: company.OpUpdate, Outcome: company.OutcomeSuccess, CompanyID: 7, Seq: 3, Duration: 12, At: at,
	})
	p.Report(context.Background(), company.Event{
		ID: "e2", Op: company.OpList, Outcome: company.OutcomeFailure, ErrorKind: "server", Error: "boom", At: at,
	})
	p.Close()

	require.Len(t, rec.msgs, 2)

	first := rec.msgs[0]
	assert.Equal(t, []byte("7"), first.Key)
	assert.Equal(t, "company.sync.update", first.Headers[kafkaDelivery.HeaderEventType])
	assert.Equal(t, "success", first.Headers[kafkaDelivery.HeaderOutcome])

	var body kafkaDelivery.SyncEventMessage
	require.NoError(t, json.Unmarshal(first.Value, &body))
	assert.Equal(t, "e1", body.EventID)
	assert.Equal(t, int64(12), body.DurationMs)
	assert.True(t, at.Equal(body.OccurredAt))

	assert.Nil(t, rec.msgs[1].Key, "list events carry no company key")
}

func TestProducer_ReportAfterCloseIsIgnored(t *testing.T) {
	rec := &recordingProducer{}
	p := New(log.NewNop(), rec, Config{})
	p.Close()
	p.Close()

	p.Report(context.Background(), company.Event{ID: "late"})
	assert.Empty(t, rec.msgs)
}

func TestProducer_PublishFailureDoesNotStopLoop(t *testing.T) {
	rec := &recordingProducer{err: errors.New("broker down")}
	p := New(log.NewNop(), rec, Config{Buffer: 4})

	p.Report(context.Background(), company.Event{ID: "a", Op: company.OpGet})
	p.Report(context.Background(), company.Event{ID: "b", Op: company.OpGet})
	p.Close()

	assert.Empty(t, rec.msgs)
}
