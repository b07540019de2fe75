package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, validateProducerConfig(Config{Topic: "t"}))
	assert.Error(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}}))
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}, Topic: "t"}))
}

func TestToProducerMessage(t *testing.T) {
	pm := toProducerMessage("events", Message{
		Key:     []byte("k"),
		Value:   []byte(`{}`),
		Headers: map[string]string{"event_type": "company.sync"},
	})
	assert.Equal(t, "events", pm.Topic)
	require.Len(t, pm.Headers, 1)
	assert.Equal(t, "event_type", string(pm.Headers[0].Key))
}

func TestProducer_Publish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	p := &producerImpl{producer: sp, topic: "events"}

	sp.ExpectSendMessageAndSucceed()
	require.NoError(t, p.Publish(context.Background(), Message{Value: []byte("a")}))

	sp.ExpectSendMessageAndFail(errors.New("leader not available"))
	require.Error(t, p.Publish(context.Background(), Message{Value: []byte("b")}))

	require.NoError(t, p.Close())
}
