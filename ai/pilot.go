package ai

import (
	"flower-snake/game"
	"flower-snake/game/types"
	"flower-snake/input"
)

// Pilot steers a game with an Agent, one decision per tick. Call Before
// ahead of each Step and After with its result; the agent learns online.
type Pilot struct {
	agent   *Agent
	learn   bool
	prev    State
	action  types.Direction
	pending bool
}

// NewPilot wraps agent. With learn false the table is only read.
func NewPilot(agent *Agent, learn bool) *Pilot {
	return &Pilot{agent: agent, learn: learn}
}

func (p *Pilot) Agent() *Agent {
	return p.agent
}

// Before observes s and returns the turn to apply. A finished game yields
// an empty command so the pilot never restarts on its own.
func (p *Pilot) Before(s game.Snapshot) input.Command {
	if s.Over {
		p.pending = false
		return input.Command{}
	}
	p.prev = Observe(s)
	p.action = p.agent.Act(p.prev)
	p.pending = true
	return input.Turn(p.action)
}

// After feeds the outcome of the tick back to the agent
func (p *Pilot) After(res game.StepResult) {
	if !p.pending {
		return
	}
	p.pending = false
	if !p.learn {
		return
	}
	p.agent.Learn(p.prev, p.action, Observe(res.Snapshot), res)
	if res.Snapshot.Over {
		p.agent.EndEpisode()
	}
}
