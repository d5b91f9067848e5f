package machine

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rocketscienceinc/ninja-strike/internal/apperror"
	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

type rules struct {
	variant Variant
}

type createGameInput struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type joinGameInput struct {
	GameID string `json:"gameId"`
}

type trackMoveInput struct {
	GameID string `json:"gameId"`
	Move   string `json:"move"`
	Hit    uint64 `json:"hit"`
}

type endGameInput struct {
	GameID            string `json:"gameId"`
	P1PlacementInputs string `json:"p1PlacementInputs"`
	P1HitInputs       string `json:"p1HitInputs"`
	P2PlacementInputs string `json:"p2PlacementInputs"`
	P2HitInputs       string `json:"p2HitInputs"`
}

var timestampField = Field{Name: "timestamp", Type: TypeUint, Optional: true}

func createGameSchema(variant Variant) Schema {
	fields := []Field{{Name: "player1", Type: TypeString}}
	if variant.UpfrontPlayers {
		fields = append(fields, Field{Name: "player2", Type: TypeString, Optional: true})
	}

	return Schema{Action: ActionCreateGame, Fields: append(fields, timestampField)}
}

func joinGameSchema() Schema {
	return Schema{Action: ActionJoinGame, Fields: []Field{
		{Name: "gameId", Type: TypeString},
		timestampField,
	}}
}

func trackMoveSchema(variant Variant) Schema {
	fields := []Field{
		{Name: "gameId", Type: TypeString},
		{Name: "move", Type: TypeString},
	}
	if variant.HitTracking {
		fields = append(fields, Field{Name: "hit", Type: TypeUint, Optional: true})
	}

	return Schema{Action: ActionTrackMove, Fields: append(fields, timestampField)}
}

func endGameSchema(variant Variant) Schema {
	fields := []Field{{Name: "gameId", Type: TypeString}}
	if variant.EndGame == EndGameReplay {
		fields = append(fields,
			Field{Name: "p1PlacementInputs", Type: TypeString},
			Field{Name: "p1HitInputs", Type: TypeString},
			Field{Name: "p2PlacementInputs", Type: TypeString},
			Field{Name: "p2HitInputs", Type: TypeString},
		)
	}

	return Schema{Action: ActionEndGame, Fields: append(fields, timestampField)}
}

// GameID - the deterministic id of the game created by sender at timestamp
// when count games exist: the EIP-191 personal message hash of
// "<sender>::<timestamp>::<count>".
func GameID(sender string, timestamp uint64, count int) string {
	message := sender + "::" + strconv.FormatUint(timestamp, 10) + "::" + strconv.Itoa(count)

	return hexutil.Encode(accounts.TextHash([]byte(message)))
}

func (that *rules) createGame(ctx *Context) error {
	in, err := decodeInputs[createGameInput](ctx.Inputs)
	if err != nil {
		return err
	}

	if in.Player1 == "" {
		return fmt.Errorf("%w: player1 is empty", apperror.ErrInvalidInput)
	}

	upfront := that.variant.UpfrontPlayers && in.Player2 != ""
	if upfront && in.Player2 == in.Player1 {
		return fmt.Errorf("%w: player2 equals player1", apperror.ErrInvalidInput)
	}

	gameID := GameID(ctx.MsgSender, ctx.Block.Timestamp, ctx.State.Len())
	if _, exists := ctx.State.Find(gameID); exists {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyExists, gameID)
	}

	game := entity.NewGame(gameID, in.Player1, ctx.Block.Timestamp)
	if upfront {
		game.Start(in.Player2, ctx.Block.Timestamp)
	}

	ctx.State.Append(game)
	ctx.Emit(entity.EventGameCreated, gameID)

	return nil
}

func (that *rules) joinGame(ctx *Context) error {
	in, err := decodeInputs[joinGameInput](ctx.Inputs)
	if err != nil {
		return err
	}

	game, ok := ctx.State.Find(in.GameID)
	if !ok {
		return apperror.ErrGameNotFound
	}

	if game.IsStarted() {
		return apperror.ErrGameAlreadyStarted
	}

	if game.IsEnded() {
		return apperror.ErrGameEnded
	}

	if game.Player1 == ctx.MsgSender {
		return apperror.ErrAlreadyInGame
	}

	game.Start(ctx.MsgSender, ctx.Block.Timestamp)
	ctx.Emit(entity.EventGameJoined, game.GameID)

	return nil
}

func (that *rules) trackMove(ctx *Context) error {
	in, err := decodeInputs[trackMoveInput](ctx.Inputs)
	if err != nil {
		return err
	}

	game, ok := ctx.State.Find(in.GameID)
	if !ok {
		return apperror.ErrGameNotFound
	}

	if err = game.ConfirmInPlay(); err != nil {
		return err
	}

	sender := ctx.MsgSender
	if !game.HasPlayer(sender) {
		return apperror.ErrPlayerNotInGame
	}

	if game.LastPlayer == sender {
		return apperror.ErrNotYourTurn
	}

	game.LastMove = in.Move
	game.LastPlayer = sender

	if that.variant.HitTracking && in.Hit != 0 {
		if hits := game.RecordHit(sender); hits >= that.variant.WinThreshold {
			game.End(sender, ctx.Block.Timestamp)
			ctx.Emit(entity.EventGameWon, sender)
		}
	}

	ctx.Emit(entity.EventMoveTracked, in.Move)
	ctx.Emit(entity.EventMoveOrigin, []string{sender, game.PlayerLabel(sender)})

	return nil
}

func (that *rules) endGame(ctx *Context) error {
	in, err := decodeInputs[endGameInput](ctx.Inputs)
	if err != nil {
		return err
	}

	game, ok := ctx.State.Find(in.GameID)
	if !ok {
		return apperror.ErrGameNotFound
	}

	if game.IsEnded() {
		return apperror.ErrGameAlreadyEnded
	}

	var winner string
	var drawn bool

	switch that.variant.EndGame {
	case EndGameCloser:
		if !sameIdentity(ctx.MsgSender, that.variant.Closer) {
			return apperror.ErrCallerNotOwner
		}
	case EndGameReplay:
		verdict, err := ReplayLogs(in.P1PlacementInputs, in.P1HitInputs, in.P2PlacementInputs, in.P2HitInputs)
		if err != nil {
			return fmt.Errorf("%w: %s", apperror.ErrInvalidInput, err.Error())
		}

		switch {
		case verdict.Tied() && that.variant.Tie == TieReject:
			return apperror.ErrAmbiguousResult
		case verdict.Tied():
			drawn = true
		case verdict.Player1Wins:
			winner = game.Player1
		case verdict.Player2Wins:
			winner = game.Player2
		}
	}

	game.End(winner, ctx.Block.Timestamp)

	ctx.Emit(entity.EventGameEnded, game.GameID)
	if winner != "" {
		ctx.Emit(entity.EventGameWon, winner)
	}
	if drawn {
		ctx.Emit(entity.EventGameDrawn, game.GameID)
	}

	return nil
}

// sameIdentity - compares two identities, ignoring hex case for addresses.
func sameIdentity(a, b string) bool {
	if common.IsHexAddress(a) && common.IsHexAddress(b) {
		return common.HexToAddress(a) == common.HexToAddress(b)
	}

	return a == b
}
