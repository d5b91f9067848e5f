package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ninja-strike/internal/apperror"
)

const (
	StatusInLobby = "in_lobby"
	StatusInPlay  = "in_play"
	StatusEnded   = "ended"
)

const (
	LabelPlayer1 = "player 1"
	LabelPlayer2 = "player 2"
)

// Game - a single match between two identities.
//
// The field order is part of the state commitment and must not be changed.
type Game struct {
	GameID     string `json:"gameId"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	CreatedAt  uint64 `json:"createdAt"`
	StartedAt  uint64 `json:"startedAt"`
	EndedAt    uint64 `json:"endedAt"`
	Status     string `json:"status"`
	LastMove   string `json:"lastMove"`
	LastPlayer string `json:"lastPlayer"`
	HitCountP1 uint64 `json:"hitCountP1"`
	HitCountP2 uint64 `json:"hitCountP2"`
	Winner     string `json:"winner"`
}

// NewGame - builds a fresh lobby game.
func NewGame(id, player1 string, createdAt uint64) Game {
	return Game{
		GameID:    id,
		Player1:   player1,
		CreatedAt: createdAt,
		Status:    StatusInLobby,
	}
}

func (that *Game) IsInLobby() bool {
	return that.Status == StatusInLobby && that.EndedAt == 0
}

func (that *Game) IsStarted() bool {
	return that.StartedAt != 0
}

// IsEnded - reports whether the game is terminal.
func (that *Game) IsEnded() bool {
	return that.Status == StatusEnded || that.EndedAt != 0
}

func (that *Game) HasPlayer(identity string) bool {
	return identity != "" && (that.Player1 == identity || that.Player2 == identity)
}

// PlayerLabel - returns "player 1" or "player 2" for a participant, empty otherwise.
func (that *Game) PlayerLabel(identity string) string {
	switch {
	case identity == "":
		return ""
	case identity == that.Player1:
		return LabelPlayer1
	case identity == that.Player2:
		return LabelPlayer2
	default:
		return ""
	}
}

// Start - seats the second player and moves the game into play.
func (that *Game) Start(player2 string, at uint64) {
	that.Player2 = player2
	that.StartedAt = at
	that.Status = StatusInPlay
}

// End - closes the game. A zero winner means no winner was declared.
func (that *Game) End(winner string, at uint64) {
	if winner != "" {
		that.Winner = winner
	}
	that.EndedAt = at
	that.Status = StatusEnded
}

// RecordHit - counts a hit taken by the opponent of attacker and returns the
// opponent's new hit count.
func (that *Game) RecordHit(attacker string) uint64 {
	if attacker == that.Player1 {
		that.HitCountP2++
		return that.HitCountP2
	}

	that.HitCountP1++
	return that.HitCountP1
}

// ConfirmInPlay - checks that moves are allowed on the game.
func (that *Game) ConfirmInPlay() error {
	switch {
	case !that.IsStarted():
		return apperror.ErrGameNotStarted
	case that.IsEnded():
		return apperror.ErrGameEnded
	case that.Status == StatusInPlay:
		return nil
	default:
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidInput, ErrUnknownGameStatus, that.Status)
	}
}
