package softgl

import "github.com/TheBitDrifter/blockscene"

var _ blockscene.DrawPhase = &Phase{}

// Phase brackets a group of draws. Between PreDraw and PostDraw it exposes
// the frame being recorded into; outside that window Target is nil.
type Phase struct {
	Name string

	target *Frame
	begun  int
	ended  int
}

func NewPhase(name string) *Phase {
	return &Phase{Name: name}
}

func (p *Phase) PreDraw(cl blockscene.CommandList) {
	p.target, _ = cl.(*Frame)
	p.begun++
}

func (p *Phase) PostDraw() {
	p.target = nil
	p.ended++
}

func (p *Phase) Target() *Frame {
	return p.target
}

// Counts reports how many times the phase has been opened and closed.
func (p *Phase) Counts() (begun, ended int) {
	return p.begun, p.ended
}
