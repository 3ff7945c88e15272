package operator

import (
	"fmt"

	"github.com/ezrec/binc/word"
)

// Operand is one side of a Command.
type Operand interface {
	operand()
}

// RangeOperand refers to a bit range of the live register.
type RangeOperand struct {
	Range word.Range
}

// LiteralOperand is an immediate value.
type LiteralOperand struct {
	Word *word.Word
}

// Empty is the absent right operand.
type Empty struct{}

func (RangeOperand) operand()   {}
func (LiteralOperand) operand() {}
func (Empty) operand()          {}

func (op RangeOperand) String() string {
	return op.Range.String()
}

func (op LiteralOperand) String() string {
	return op.Word.String()
}

func (Empty) String() string {
	return ""
}

// Command is a parsed command line.
type Command struct {
	Left  Operand // Always a RangeOperand when produced by the parser.
	Kind  Kind
	Right Operand
}

// Apply runs the command against the register w.
func (cmd Command) Apply(w *word.Word) (effect Effect, message string, err error) {
	return Apply(cmd.Kind, w, cmd.Left, cmd.Right)
}

func (cmd Command) String() string {
	text := ""
	if left, ok := cmd.Left.(RangeOperand); ok {
		text = left.String()
	}
	text += cmd.Kind.String()
	if right, ok := cmd.Right.(fmt.Stringer); ok {
		text += right.String()
	}
	return text
}
