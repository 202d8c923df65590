package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionMessageBufferEvictsOldest(t *testing.T) {
	buf := &SessionMessageBuffer{MaxLength: 3}
	for i := 1; i <= 5; i++ {
		buf.Push(MessagePayload{"n": i})
	}

	items := buf.GetCopy()
	assert.Len(t, items, 3)
	assert.Equal(t, 3, items[0]["n"])
	assert.Equal(t, 5, items[2]["n"])
}

func TestSessionMessageBuffersIsolatedBySession(t *testing.T) {
	buffers := NewSessionMessageBuffers(10)
	buffers.PushMessage(1, MessagePayload{"content": "for session one"})
	buffers.PushMessage(2, MessagePayload{"content": "for session two"})

	assert.Len(t, buffers.CopyMessages(1), 1)
	assert.Len(t, buffers.CopyMessages(2), 1)
	assert.Nil(t, buffers.CopyMessages(3))
}
