package session

import (
	"errors"
	"guessword/internal/metrics"
	"guessword/internal/rooms"
	"guessword/internal/wshub"
)

var ErrUnknownMessage = errors.New("unknown message type")

// Handle runs one room-lifecycle frame from connID. Failures are reported to
// that connection only.
func (c *Coordinator) Handle(connID string, msg wshub.ClientMessage) {
	var err error
	switch msg.Type {
	case wshub.TypeCreateRoom:
		_, err = c.CreateRoom(connID, msg.DisplayName)
	case wshub.TypeJoinRoom:
		err = c.JoinRoom(connID, msg.RoomID, msg.DisplayName)
	case wshub.TypePlayerReady:
		err = c.SetReady(connID, msg.RoomID)
	case wshub.TypeStartGame:
		err = c.BeginPlaying(connID, msg.RoomID)
	case wshub.TypeUpdateProgress:
		err = c.UpdateProgress(connID, msg.RoomID, Progress{
			Score:    msg.Score,
			Index:    msg.ProgressIndex,
			Finished: msg.Finished,
		})
	default:
		err = ErrUnknownMessage
	}
	if err != nil {
		c.Reject(connID, err)
	}
}

// Reject sends err to connID as an error-msg frame.
func (c *Coordinator) Reject(connID string, err error) {
	metrics.ErrorReplies.WithLabelValues(errorLabel(err)).Inc()
	c.out.To(connID, wshub.ErrorMessage(err.Error()))
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, rooms.ErrRoomFull):
		return "room_full"
	case errors.Is(err, rooms.ErrRoomNotJoinable):
		return "room_not_joinable"
	case errors.Is(err, rooms.ErrParticipantNotFound):
		return "participant_not_found"
	case errors.Is(err, ErrUnknownMessage):
		return "unknown_message"
	default:
		return "other"
	}
}
