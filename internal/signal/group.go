package signal

import "sync"

// Group collects connections so they can be dropped together.
type Group struct {
	mu    sync.Mutex
	conns []*Connection
}

// Add records conns in the group
func (g *Group) Add(conns ...*Connection) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.conns = append(g.conns, conns...)
}

// DisconnectAll disconnects every recorded connection and empties the group
func (g *Group) DisconnectAll() {
	g.mu.Lock()
	conns := g.conns
	g.conns = nil
	g.mu.Unlock()

	for _, c := range conns {
		c.Disconnect()
	}
}

// Len returns the number of recorded connections
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conns)
}
