package machine

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/ninja-strike/internal/apperror"
	"github.com/rocketscienceinc/ninja-strike/internal/commitment"
	"github.com/rocketscienceinc/ninja-strike/internal/entity"
	"github.com/rocketscienceinc/ninja-strike/internal/state"
)

const (
	ActionCreateGame = "createGame"
	ActionJoinGame   = "joinGame"
	ActionTrackMove  = "trackMove"
	ActionEndGame    = "endGame"

	HookPruneGames = "pruneGames"
)

// Action - an authenticated request to apply one transition.
type Action struct {
	Inputs    map[string]any `json:"inputs"`
	MsgSender string         `json:"msgSender"`
	Block     entity.Block   `json:"block"`
}

// Result - the outcome of an accepted action.
type Result struct {
	State  *state.State
	Events []entity.Event
}

// Context - everything a handler may read, plus the event sink.
type Context struct {
	State     *state.State
	Inputs    map[string]any
	MsgSender string
	Block     entity.Block

	events []entity.Event
}

func (that *Context) Emit(name string, value any) {
	that.events = append(that.events, entity.Event{Name: name, Value: value})
}

// Handler - mutates ctx.State in place or returns a rejection. A handler must
// not mutate anything before all of its preconditions hold.
type Handler func(ctx *Context) error

// Hook - a time-triggered pass over the state.
type Hook func(st *state.State, block entity.Block)

type Transition struct {
	Schema  Schema
	Handler Handler
}

// Machine - the immutable dispatch map of one game machine.
type Machine struct {
	variant     Variant
	transitions map[string]Transition
	hooks       map[string]Hook
}

// New - builds the dispatch map for a variant.
func New(variant Variant) (*Machine, error) {
	variant, err := variant.normalize()
	if err != nil {
		return nil, err
	}

	rules := &rules{variant: variant}

	transitions := map[string]Transition{
		ActionCreateGame: {Schema: createGameSchema(variant), Handler: rules.createGame},
		ActionJoinGame:   {Schema: joinGameSchema(), Handler: rules.joinGame},
		ActionTrackMove:  {Schema: trackMoveSchema(variant), Handler: rules.trackMove},
	}

	if variant.EndGame != EndGameDisabled {
		transitions[ActionEndGame] = Transition{Schema: endGameSchema(variant), Handler: rules.endGame}
	}

	return &Machine{
		variant:     variant,
		transitions: transitions,
		hooks: map[string]Hook{
			HookPruneGames: rules.pruneGames,
		},
	}, nil
}

func (that *Machine) Variant() Variant {
	return that.variant
}

// Actions - registered action names, sorted.
func (that *Machine) Actions() []string {
	return slices.Sorted(maps.Keys(that.transitions))
}

// Hooks - registered hook names, sorted.
func (that *Machine) Hooks() []string {
	return slices.Sorted(maps.Keys(that.hooks))
}

// Schema - the input schema of an action.
func (that *Machine) Schema(action string) (Schema, bool) {
	transition, ok := that.transitions[action]
	if !ok {
		return Schema{}, false
	}

	return transition.Schema.clone(), true
}

// Schemas - a copy of every action schema keyed by action name.
func (that *Machine) Schemas() map[string]Schema {
	schemas := make(map[string]Schema, len(that.transitions))
	for name, transition := range that.transitions {
		schemas[name] = transition.Schema.clone()
	}

	return schemas
}

// Apply - runs one action against a copy of st. On rejection the returned
// error is an *apperror.Rejection and st is untouched.
func (that *Machine) Apply(st *state.State, name string, action Action) (*Result, error) {
	transition, ok := that.transitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, name)
	}

	if err := transition.Schema.Validate(action.Inputs); err != nil {
		return nil, err
	}

	ctx := &Context{
		State:     st.Clone(),
		Inputs:    action.Inputs,
		MsgSender: action.MsgSender,
		Block:     action.Block,
		events:    []entity.Event{},
	}

	if err := transition.Handler(ctx); err != nil {
		return nil, err
	}

	return &Result{State: ctx.State, Events: ctx.events}, nil
}

// RunHook - runs a single named hook against a copy of st.
func (that *Machine) RunHook(st *state.State, name string, block entity.Block) (*state.State, error) {
	hook, ok := that.hooks[name]
	if !ok {
		return nil, fmt.Errorf("%w: hook %s", apperror.ErrUnknownAction, name)
	}

	next := st.Clone()
	hook(next, block)

	return next, nil
}

// RunHooks - runs every hook in name order against a copy of st.
func (that *Machine) RunHooks(st *state.State, block entity.Block) *state.State {
	next := st.Clone()
	for _, name := range that.Hooks() {
		that.hooks[name](next, block)
	}

	return next
}

// Root - the commitment of st under the variant's scheme.
func (that *Machine) Root(st *state.State) (common.Hash, error) {
	root, err := commitment.Root(that.variant.Commitment, st.Games)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to compute root: %w", err)
	}

	return root, nil
}
