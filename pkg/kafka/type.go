package kafka

import "github.com/IBM/sarama"

// Config holds configuration for Kafka producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// Message is one record. Headers become Kafka record headers.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// producerImpl implements IProducer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
