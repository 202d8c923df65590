package services

import "fmt"

// AdminRoom is the shared broadcast room every connected administrator
// joins. User rooms are private, keyed by user id.
const AdminRoom = "admins"

// UserRoom is the name of a user's private broadcast room
func UserRoom(userID uint64) string {
	return fmt.Sprintf("user_%d", userID)
}

// DeliveryRooms resolves the two broadcast destinations for a chat
// message: the sender's own room (echo, for multi-device consistency) and
// the counterpart's room (notify)
func DeliveryRooms(senderIsAdmin bool, targetUserID uint64) (echo, notify string) {
	if senderIsAdmin {
		return AdminRoom, UserRoom(targetUserID)
	}
	return UserRoom(targetUserID), AdminRoom
}

// RoomBroadcaster sends an event to every connection in a room
type RoomBroadcaster interface {
	Broadcast(room, event string, args ...interface{}) bool
}

// EmitToRooms emits the same payload to the echo room and then the notify
// room, skipping the second emit when both resolve to the same room so no
// connection receives the event twice
func EmitToRooms(b RoomBroadcaster, echo, notify, event string, payload interface{}) {
	b.Broadcast(echo, event, payload)
	if notify != echo {
		b.Broadcast(notify, event, payload)
	}
}
