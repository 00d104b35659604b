package messaging

import (
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool {
	return true
}

func (t *fakeToken) WaitTimeout(time.Duration) bool {
	return true
}

func (t *fakeToken) Done() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

func (t *fakeToken) Error() error {
	return t.err
}

type fakeClient struct {
	mqtt.Client

	mutex      sync.Mutex
	topics     []string
	payloads   [][]byte
	publishErr error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, payload.([]byte))
	return &fakeToken{err: c.publishErr}
}

func (c *fakeClient) published() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.topics)
}

func TestPublishSendsTheEncodedPayloadToTheTopic(t *testing.T) {
	client := &fakeClient{}
	publisher := NewPublisher(client, logging.NewLogger())

	publisher.Publish("neo7m", map[string]interface{}{"latitude": 40.6})

	require.Equal(t, 1, client.published())
	assert.Equal(t, "neo7m", client.topics[0])
	assert.JSONEq(t, `{"latitude": 40.6}`, string(client.payloads[0]))
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	client := &fakeClient{publishErr: errors.New("broker unavailable")}
	publisher := NewPublisher(client, logging.NewLogger())

	assert.NotPanics(t, func() {
		publisher.Publish("mpu6500", map[string]interface{}{"acceleration_x": 0.1})
	})

	// the error surfaces asynchronously in the logs only
	assert.Eventually(t, func() bool {
		return client.published() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestUnencodablePayloadIsDroppedWithoutPublishing(t *testing.T) {
	client := &fakeClient{}
	publisher := NewPublisher(client, logging.NewLogger())

	publisher.Publish("neo7m", map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, 0, client.published())
}
