package machines

// State is a machine state label. Labels are free-form; Halt is the only
// one with a meaning to the engine.
type State string

const Halt State = "HALT"

func (s State) Halted() bool {
	return s == Halt
}
