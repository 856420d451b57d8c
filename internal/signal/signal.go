// Package signal provides typed event sources with explicit subscriptions.
//
// A handler is registered with Connect and stays registered until its
// Connection is disconnected. Owners that subscribe to several sources keep
// the connections in a Group and drop them all at teardown.
package signal

import "sync"

// Signal is an event source delivering values of type T to connected handlers.
// The zero value is ready to use.
type Signal[T any] struct {
	mu       sync.Mutex
	handlers []*Connection
	fns      map[*Connection]func(T)
}

// Connection is the handle returned by Connect.
type Connection struct {
	once       sync.Once
	disconnect func()
}

// Disconnect removes the handler from its signal. Calling it more than once is a no-op.
func (c *Connection) Disconnect() {
	if c == nil {
		return
	}
	c.once.Do(c.disconnect)
}

// Connect registers fn and returns the connection handle.
func (s *Signal[T]) Connect(fn func(T)) *Connection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[*Connection]func(T))
	}
	conn := &Connection{}
	conn.disconnect = func() { s.remove(conn) }
	s.handlers = append(s.handlers, conn)
	s.fns[conn] = fn
	return conn
}

func (s *Signal[T]) remove(conn *Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.handlers {
		if c == conn {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			break
		}
	}
	delete(s.fns, conn)
}

// Emit delivers v to every handler connected at the time of the call, in
// connection order. Handlers disconnected by an earlier handler of the same
// emission are skipped.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := make([]*Connection, len(s.handlers))
	copy(snapshot, s.handlers)
	s.mu.Unlock()

	for _, conn := range snapshot {
		s.mu.Lock()
		fn, ok := s.fns[conn]
		s.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

// Len returns the number of connected handlers
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}
