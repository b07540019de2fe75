package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout is the Kafka producer request timeout.
	ProducerTimeout = 10 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
	// DefaultClientID identifies this service to the brokers.
	DefaultClientID = "dashboard-srv"
)

// KafkaVersion is the protocol version spoken to the brokers.
var KafkaVersion = sarama.V2_6_0_0
