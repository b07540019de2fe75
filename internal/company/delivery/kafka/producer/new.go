package producer

import (
	"sync"

	"dashboard-srv/internal/company"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
)

const defaultBuffer = 256

// Producer publishes company sync events.
// Report only enqueues; a background loop does the publishing.
type Producer interface {
	company.Reporter
	// Close stops accepting events and waits for the queue to drain.
	Close()
}

type Config struct {
	Buffer int // queued events before Report starts dropping
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	queue    chan company.Event

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New creates the sync event producer and starts its publishing loop.
func New(l log.Logger, producer pkgKafka.IProducer, cfg Config) Producer {
	if cfg.Buffer <= 0 {
		cfg.Buffer = defaultBuffer
	}
	p := &implProducer{
		l:        l,
		producer: producer,
		queue:    make(chan company.Event, cfg.Buffer),
	}
	p.wg.Add(1)
	go p.run()
	return p
}
