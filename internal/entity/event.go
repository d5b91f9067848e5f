package entity

import "errors"

const (
	EventGameCreated = "GameCreated"
	EventGameJoined  = "GameJoined"
	EventGameEnded   = "GameEnded"
	EventGameWon     = "gameWon"
	EventGameDrawn   = "gameDrawn"
	EventMoveTracked = "moveTracked"
	EventMoveOrigin  = "moveOrigin"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Event - a named value emitted by an accepted transition.
type Event struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Block - the block context an action or hook is evaluated in.
type Block struct {
	Timestamp uint64 `json:"timestamp"`
}
