package wshub

import (
	"guessword/internal/game"
	"guessword/internal/players"
	"time"
)

// Inbound frame types.
const (
	TypeCreateRoom     = "create-room"
	TypeJoinRoom       = "join-room"
	TypePlayerReady    = "player-ready"
	TypeStartGame      = "start-game"
	TypeUpdateProgress = "update-progress"
	TypeDescribe       = "describe"
)

// Outbound frame types.
const (
	TypeWelcome          = "welcome"
	TypeRoomCreated      = "room-created"
	TypePlayerJoined     = "player-joined"
	TypeReadyUpdate      = "ready-update"
	TypeStartCountdown   = "start-countdown"
	TypeGameStarted      = "game-started"
	TypeOpponentProgress = "opponent-progress"
	TypeGameOver         = "game-over"
	TypePlayerLeft       = "player-left"
	TypeError            = "error-msg"
	TypeCheatDetected    = "cheat-detected"
	TypeGuessResult      = "guess-result"
)

// ClientMessage is the JSON structure received from clients.
type ClientMessage struct {
	Type              string   `json:"type"`
	RoomID            string   `json:"roomId,omitempty"`
	DisplayName       string   `json:"displayName,omitempty"`
	Score             int      `json:"score"`
	ProgressIndex     int      `json:"progressIndex"`
	Finished          bool     `json:"finished"`
	TargetWord        string   `json:"targetWord,omitempty"`
	Description       string   `json:"description,omitempty"`
	PriorDescriptions []string `json:"priorDescriptions,omitempty"`
}

// ProgressView is what a player learns about the opponent's progress.
type ProgressView struct {
	ConnectionID  string `json:"connectionId"`
	Score         int    `json:"score"`
	ProgressIndex int    `json:"progressIndex"`
	Finished      bool   `json:"finished"`
}

// ServerMessage is the JSON structure sent to clients.
type ServerMessage struct {
	Type          string           `json:"type"`
	ConnectionID  string           `json:"connectionId,omitempty"`
	RoomID        string           `json:"roomId,omitempty"`
	Participants  []players.Player `json:"participants,omitempty"`
	Challenges    []string         `json:"challenges,omitempty"`
	CountdownSecs int              `json:"countdownSecs,omitempty"`
	StartedAt     *time.Time       `json:"startedAt,omitempty"`
	DurationSecs  int              `json:"durationSecs,omitempty"`
	Progress      *ProgressView    `json:"progress,omitempty"`
	Results       *game.Results    `json:"results,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	Guess         string           `json:"guess,omitempty"`
	Correct       bool             `json:"correct,omitempty"`
}

func ErrorMessage(reason string) ServerMessage {
	return ServerMessage{Type: TypeError, Reason: reason}
}
