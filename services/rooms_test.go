package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBroadcaster struct {
	calls []broadcastCall
}

type broadcastCall struct {
	room  string
	event string
}

func (f *fakeBroadcaster) Broadcast(room, event string, args ...interface{}) bool {
	f.calls = append(f.calls, broadcastCall{room: room, event: event})
	return true
}

func TestDeliveryRooms(t *testing.T) {
	// A user sending echoes into their own room and notifies the admins
	echo, notify := DeliveryRooms(false, 5)
	assert.Equal(t, "user_5", echo)
	assert.Equal(t, AdminRoom, notify)

	// An admin sending echoes into the admin pool and notifies the user
	echo, notify = DeliveryRooms(true, 5)
	assert.Equal(t, AdminRoom, echo)
	assert.Equal(t, "user_5", notify)
}

func TestEmitToRoomsBothDestinations(t *testing.T) {
	b := &fakeBroadcaster{}
	EmitToRooms(b, "user_5", AdminRoom, "receive_message", nil)
	assert.Len(t, b.calls, 2)
	assert.Equal(t, "user_5", b.calls[0].room)
	assert.Equal(t, AdminRoom, b.calls[1].room)
}

func TestEmitToRoomsSuppressesDuplicate(t *testing.T) {
	// When echo and notify resolve to the same room, exactly one
	// broadcast goes out
	b := &fakeBroadcaster{}
	EmitToRooms(b, AdminRoom, AdminRoom, "receive_message", nil)
	assert.Len(t, b.calls, 1)
	assert.Equal(t, AdminRoom, b.calls[0].room)
}
