package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopicNames(t *testing.T) {
	topic := NewTopic("civicscoop.meeting.events")

	assert.Equal(t, "civicscoop.meeting.events", topic.Base())
	assert.Equal(t, "civicscoop.meeting.events.dlq", topic.DLQ())

	retries := topic.GetRetryTopics()
	assert.Len(t, retries, len(RetryDelays))
	assert.Equal(t, "civicscoop.meeting.events.retry.10s", retries[0])
	assert.Equal(t, "civicscoop.meeting.events.retry.10m0s", retries[len(retries)-1])
}

func TestGetRetryTopicBounds(t *testing.T) {
	topic := NewTopic("civicscoop.meeting.events")

	first, err := topic.GetRetryTopic(1)
	assert.NoError(t, err)
	assert.Equal(t, "civicscoop.meeting.events.retry.10s", first)

	_, err = topic.GetRetryTopic(0)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)

	_, err = topic.GetRetryTopic(len(RetryDelays) + 1)
	assert.ErrorIs(t, err, ErrMaxRetryExceeded)
}

func TestParseRetryFromTopicName(t *testing.T) {
	d, ok := ParseRetryFromTopicName("civicscoop.meeting.events.retry.1m0s")
	assert.True(t, ok)
	assert.Equal(t, time.Minute, d)

	_, ok = ParseRetryFromTopicName("civicscoop.meeting.events")
	assert.False(t, ok)

	_, ok = ParseRetryFromTopicName("civicscoop.meeting.events.retry.bogus")
	assert.False(t, ok)
}

func TestJSONEventRoundTrip(t *testing.T) {
	type payload struct {
		URL string `json:"url"`
	}

	evt, err := NewJSONEvent("evt-1", payload{URL: "https://example.gov/meetings/1"}, 3)
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", evt.ID)
	assert.Equal(t, 3, evt.MaxRetry)
	assert.Equal(t, 0, evt.Retry)

	decoded, err := DecodeJSON[payload](evt)
	assert.NoError(t, err)
	assert.Equal(t, "https://example.gov/meetings/1", decoded.URL)
}

func TestNewJSONEventDefaults(t *testing.T) {
	evt, err := NewJSONEvent("", map[string]string{"k": "v"}, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, len(RetryDelays), evt.MaxRetry)
}
