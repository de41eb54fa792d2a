package flock

import (
	"errors"
	"fmt"
)

// ErrDuplicateAgent is returned by Population.Add when the id is already live.
var ErrDuplicateAgent = errors.New("agent already exists")

// Population is the ordered live set of agents, indexed by id.
// Insertion order is kept so that a sequential step is reproducible.
// It is not safe for concurrent use: its owner mutates it between frames.
type Population struct {
	agents []*Agent
	index  map[string]int
}

// NewPopulation returns an empty population.
func NewPopulation() *Population {
	return &Population{index: make(map[string]int)}
}

// Add appends a new agent.
func (p *Population) Add(a *Agent) error {
	if _, ok := p.index[a.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAgent, a.ID)
	}
	p.index[a.ID] = len(p.agents)
	p.agents = append(p.agents, a)
	return nil
}

// Remove deletes the agent with the given id, keeping the order of the others.
func (p *Population) Remove(id string) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	copy(p.agents[i:], p.agents[i+1:])
	p.agents[len(p.agents)-1] = nil
	p.agents = p.agents[:len(p.agents)-1]
	delete(p.index, id)
	for j := i; j < len(p.agents); j++ {
		p.index[p.agents[j].ID] = j
	}
	return true
}

// Get looks an agent up by id.
func (p *Population) Get(id string) (*Agent, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.agents[i], true
}

// Len is the number of live agents.
func (p *Population) Len() int {
	return len(p.agents)
}

// Agents exposes the live slice. Callers must not retain it across a mutation.
func (p *Population) Agents() []*Agent {
	return p.agents
}

// Reset drops every agent, reusing the backing storage.
func (p *Population) Reset() {
	clear(p.agents)
	p.agents = p.agents[:0]
	clear(p.index)
}
