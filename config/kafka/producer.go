package kafka

import (
	"errors"
	"fmt"
	"sync"

	"dashboard-srv/config"
	"dashboard-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerMu       sync.RWMutex
)

var errProducerNotConnected = errors.New("kafka producer not initialized")

// ConnectProducer returns the shared sync event producer, creating it on first use.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	producerInstance = client
	return producerInstance, nil
}

// ProducerHealthCheck reports whether the shared producer is connected and healthy.
func ProducerHealthCheck() error {
	producerMu.RLock()
	defer producerMu.RUnlock()

	if producerInstance == nil {
		return errProducerNotConnected
	}
	return producerInstance.HealthCheck()
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	producerMu.Lock()
	defer producerMu.Unlock()

	if producerInstance == nil {
		return nil
	}
	err := producerInstance.Close()
	producerInstance = nil
	return err
}
