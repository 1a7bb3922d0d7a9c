package agents

import "github.com/forge-lab/daedalus/pkg/domain/model"

// Directory is a read-only lookup of agent personas by ID. Entries are fixed
// at construction time; leveling state is tracked separately in AgentMemory.
type Directory struct {
	byID  map[string]*model.Agent
	order []string
}

// NewDirectory builds a directory from the given agents. Passing no agents
// yields the built-in default catalog.
func NewDirectory(agents ...*model.Agent) *Directory {
	if len(agents) == 0 {
		agents = defaultAgents()
	}

	d := &Directory{
		byID: make(map[string]*model.Agent, len(agents)),
	}
	for _, a := range agents {
		if _, exists := d.byID[a.ID]; exists {
			continue
		}
		d.byID[a.ID] = a
		d.order = append(d.order, a.ID)
	}
	return d
}

// Get returns the agent with the given ID, or nil when no such agent exists
func (d *Directory) Get(id string) *model.Agent {
	return d.byID[id]
}

// List returns all agents in catalog order
func (d *Directory) List() []*model.Agent {
	result := make([]*model.Agent, 0, len(d.order))
	for _, id := range d.order {
		result = append(result, d.byID[id])
	}
	return result
}
