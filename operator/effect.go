package operator

// Effect tells the caller what to do with the undo history after a command.
type Effect int

//go:generate go tool stringer -linecomment -type=Effect
const (
	EFFECT_HISTORICAL    = Effect(0) // historical
	EFFECT_NONHISTORICAL = Effect(1) // nonhistorical
	EFFECT_UNDO          = Effect(2) // undo
	EFFECT_REDO          = Effect(3) // redo
)
