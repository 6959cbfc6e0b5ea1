package rooms

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrRoomNotJoinable     = errors.New("game already in progress")
	ErrParticipantNotFound = errors.New("player not in room")
)
