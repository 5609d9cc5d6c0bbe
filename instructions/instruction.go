package instructions

type Move string

const (
	Left  Move = "left"
	Right Move = "right"
	Stay  Move = "stay"
)

// Instruction is one transition rule: reading TapeSymbol in State writes
// Write, moves the head and switches to Next.
// Move values other than left and right keep the head in place.
type Instruction struct {
	State      string `json:"state" yaml:"state"`
	TapeSymbol string `json:"tapeSymbol" yaml:"tapeSymbol"`
	Write      string `json:"write" yaml:"write"`
	Move       Move   `json:"move" yaml:"move"`
	Next       string `json:"next" yaml:"next"`
}

func (i Instruction) Matches(state, symbol string) bool {
	return i.State == state && i.TapeSymbol == symbol
}
