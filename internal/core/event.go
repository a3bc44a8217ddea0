package core

// Event is a named cue emitted by a game during a step.
// Audio and persistence layers subscribe to these by name.
type Event string

const (
	EventGateMultiply Event = "gate-multiply"
	EventGateDivide   Event = "gate-divide"
	EventBattleStart  Event = "battle-start"
	EventBattleWin    Event = "battle-win"
	EventBattleLose   Event = "battle-lose"
	EventBattleDraw   Event = "battle-draw"
	EventClash        Event = "clash"
)

// AllEvents lists every cue in a stable order.
var AllEvents = []Event{
	EventGateMultiply,
	EventGateDivide,
	EventBattleStart,
	EventBattleWin,
	EventBattleLose,
	EventBattleDraw,
	EventClash,
}
