package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"dashboard-srv/internal/company"
	kafkaDelivery "dashboard-srv/internal/company/delivery/kafka"
	pkgKafka "dashboard-srv/pkg/kafka"
)

// Report enqueues e. When the queue is full the event is dropped and logged.
func (p *implProducer) Report(ctx context.Context, e company.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}

	select {
	case p.queue <- e:
	default:
		p.l.Warnf(ctx, "company.delivery.kafka.producer.Report: queue full, dropped event %s (%s/%s)", e.ID, e.Op, e.Outcome)
	}
}

func (p *implProducer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *implProducer) run() {
	defer p.wg.Done()
	for e := range p.queue {
		// the request that produced e may be long gone
		ctx := context.Background()
		if err := p.publish(ctx, e); err != nil {
			p.l.Errorf(ctx, "company.delivery.kafka.producer.run: publish failed: %v", err)
		}
	}
}

func (p *implProducer) publish(ctx context.Context, e company.Event) error {
	msg := kafkaDelivery.SyncEventMessage{
		EventID:    e.ID,
		Op:         string(e.Op),
		Outcome:    string(e.Outcome),
		CompanyID:  e.CompanyID,
		Seq:        e.Seq,
		ErrorKind:  e.ErrorKind,
		Error:      e.Error,
		DurationMs: e.Duration,
		OccurredAt: e.At,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync event: %w", err)
	}

	// events of one company stay ordered within a partition
	var key []byte
	if e.CompanyID != 0 {
		key = []byte(strconv.FormatInt(e.CompanyID, 10))
	}

	if err := p.producer.Publish(ctx, pkgKafka.Message{
		Key:   key,
		Value: body,
		Headers: map[string]string{
			kafkaDelivery.HeaderEventType: kafkaDelivery.EventType(msg.Op),
			kafkaDelivery.HeaderOutcome:   msg.Outcome,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish sync event %s: %w", e.ID, err)
	}

	p.l.Debugf(ctx, "Published sync event %s: %s/%s", e.ID, msg.Op, msg.Outcome)
	return nil
}
