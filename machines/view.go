package machines

import (
	"github.com/reusee/turing/instructions"
	"github.com/reusee/turing/tapes"
)

// View is what a front end renders after each command.
type View struct {
	Window       []tapes.Cell
	Head         int
	State        State
	Instructions []instructions.Instruction
	// Rule is the position of the rule the next step would apply, or -1.
	Rule    int
	Running bool
	Steps   int
}

func (m *Machine) View(window int) View {
	m.lock.Acquire()
	defer m.lock.Release()
	return View{
		Window:       m.tape.Window(window),
		Head:         m.tape.Head(),
		State:        m.state,
		Instructions: m.set.All(),
		Rule:         m.set.Index(string(m.state), m.tape.ReadHead()),
		Running:      m.run != nil,
		Steps:        m.steps,
	}
}
