package machine

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/ninja-strike/internal/commitment"
)

// EndGamePolicy - who may close a game and how the winner is decided.
type EndGamePolicy string

const (
	// EndGameDisabled - the machine exposes no endGame action.
	EndGameDisabled EndGamePolicy = ""
	// EndGameCloser - only the configured closer identity may end a game.
	EndGameCloser EndGamePolicy = "closer"
	// EndGameReplay - anyone may end a game by submitting placement and hit logs.
	EndGameReplay EndGamePolicy = "replay"
)

// TiePolicy - outcome when both hit logs cover the opposing placements.
type TiePolicy string

const (
	TieDraw   TiePolicy = "draw"
	TieReject TiePolicy = "reject"
)

const (
	DefaultPruneInterval uint64 = 300_000
	DefaultWinThreshold  uint64 = 1
	DefaultCloser               = "0xfcAe752B10e1952Ca2AcdB8AacafbfA4188b85ec"
)

const (
	VariantSimple      = "simple"
	VariantNinjaStrike = "ninja-strike"
	VariantNinjaReplay = "ninja-replay"
)

var (
	ErrUnknownVariant   = errors.New("unknown machine variant")
	ErrInvalidVariant   = errors.New("invalid machine variant")
	errCloserRequired   = errors.New("closer identity is required for the closer policy")
	errUnknownTiePolicy = errors.New("unknown tie policy")
)

// Variant - the rule set a machine runs with.
type Variant struct {
	Name string

	// UpfrontPlayers lets createGame seat both players at once.
	UpfrontPlayers bool

	HitTracking  bool
	WinThreshold uint64

	EndGame EndGamePolicy
	Closer  string
	Tie     TiePolicy

	PruneInterval uint64
	Commitment    commitment.Scheme
}

// Simple - two players named upfront, no scoring, flat commitment.
func Simple() Variant {
	return Variant{
		Name:           VariantSimple,
		UpfrontPlayers: true,
		PruneInterval:  DefaultPruneInterval,
		Commitment:     commitment.SchemeFlat,
		Tie:            TieDraw,
	}
}

// NinjaStrike - lobby games, hit counting and a privileged closer.
func NinjaStrike() Variant {
	return Variant{
		Name:          VariantNinjaStrike,
		HitTracking:   true,
		WinThreshold:  DefaultWinThreshold,
		EndGame:       EndGameCloser,
		Closer:        DefaultCloser,
		Tie:           TieDraw,
		PruneInterval: DefaultPruneInterval,
		Commitment:    commitment.SchemeMerkle,
	}
}

// NinjaReplay - Ninja Strike with open endGame verified by log replay.
func NinjaReplay() Variant {
	v := NinjaStrike()
	v.Name = VariantNinjaReplay
	v.EndGame = EndGameReplay
	v.Closer = ""

	return v
}

// VariantByName - returns the preset for name.
func VariantByName(name string) (Variant, error) {
	switch name {
	case VariantSimple:
		return Simple(), nil
	case VariantNinjaStrike, "":
		return NinjaStrike(), nil
	case VariantNinjaReplay:
		return NinjaReplay(), nil
	default:
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// normalize - fills defaults and rejects inconsistent settings.
func (that Variant) normalize() (Variant, error) {
	if that.WinThreshold == 0 {
		that.WinThreshold = DefaultWinThreshold
	}

	if that.PruneInterval == 0 {
		that.PruneInterval = DefaultPruneInterval
	}

	if that.Commitment == "" {
		that.Commitment = commitment.SchemeMerkle
	}

	if _, err := commitment.ParseScheme(string(that.Commitment)); err != nil {
		return that, fmt.Errorf("%w: %w", ErrInvalidVariant, err)
	}

	switch that.Tie {
	case "":
		that.Tie = TieDraw
	case TieDraw, TieReject:
	default:
		return that, fmt.Errorf("%w: %w: %q", ErrInvalidVariant, errUnknownTiePolicy, that.Tie)
	}

	switch that.EndGame {
	case EndGameDisabled, EndGameReplay:
	case EndGameCloser:
		if that.Closer == "" {
			return that, fmt.Errorf("%w: %w", ErrInvalidVariant, errCloserRequired)
		}
	default:
		return that, fmt.Errorf("%w: unknown end game policy %q", ErrInvalidVariant, that.EndGame)
	}

	return that, nil
}
