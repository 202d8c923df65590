package services

import "sync"

// MessagePayload is a serialized receive_message event, kept around for
// replay to newly connected devices
type MessagePayload map[string]interface{}

// SessionMessageBuffer holds the most recent message payloads of one chat
// session, oldest first
type SessionMessageBuffer struct {
	MaxLength int
	items     []MessagePayload
}

func (buf *SessionMessageBuffer) Push(payload MessagePayload) {

	// If there is still room under the max, add it
	if len(buf.items) < buf.MaxLength {
		buf.items = append(buf.items, payload)
		return
	}

	// Move everything over one space
	for i := 1; i < len(buf.items); i++ {
		buf.items[i-1] = buf.items[i]
	}

	// Insert the new message in the last slot
	buf.items[len(buf.items)-1] = payload

}

func (buf *SessionMessageBuffer) GetCopy() []MessagePayload {
	items := make([]MessagePayload, len(buf.items))
	copy(items, buf.items)
	return items
}

// SessionMessageBuffers groups the per-session replay buffers behind one
// lock. Buffers are created lazily on first push.
type SessionMessageBuffers struct {
	maxLength  int
	buffers    map[uint64]*SessionMessageBuffer
	buffersMut sync.RWMutex
}

func NewSessionMessageBuffers(maxLength int) *SessionMessageBuffers {
	return &SessionMessageBuffers{
		maxLength: maxLength,
		buffers:   map[uint64]*SessionMessageBuffer{},
	}
}

func (s *SessionMessageBuffers) PushMessage(sessionID uint64, payload MessagePayload) {

	// Lock on the buffers
	s.buffersMut.Lock()
	defer s.buffersMut.Unlock()

	// Get the buffer for this session
	buf, ok := s.buffers[sessionID]
	if !ok {
		buf = &SessionMessageBuffer{
			MaxLength: s.maxLength,
		}
		s.buffers[sessionID] = buf
	}

	// Push the message
	buf.Push(payload)

}

func (s *SessionMessageBuffers) CopyMessages(sessionID uint64) []MessagePayload {

	// Lock on the buffers with readonly access
	s.buffersMut.RLock()
	defer s.buffersMut.RUnlock()

	// Get the buffer for this session
	buf, ok := s.buffers[sessionID]
	if !ok {
		return nil
	}

	// Copy the values from the buffer
	return buf.GetCopy()

}
