package db

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jsphweid/scorepoint/model"
	"github.com/jsphweid/scorepoint/util"
)

// Store keeps one serve session's resolved events in memory, keyed by
// generated id. The resolution core itself stays stateless; this only
// exists so the HTTP surface can hand out stable references to past
// results. When the limit is reached the oldest events fall off.
type Store struct {
	mu     sync.RWMutex
	limit  int
	events map[string]model.ScoreMouseEvent
	order  []string
}

func New(limit int) *Store {
	return &Store{
		limit:  limit,
		events: make(map[string]model.ScoreMouseEvent),
	}
}

// Put stores an event and returns its id.
func (s *Store) Put(ev model.ScoreMouseEvent) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[id] = ev
	s.order = append(s.order, id)
	for s.limit > 0 && len(s.order) > s.limit {
		delete(s.events, s.order[0])
		s.order = s.order[1:]
	}
	return id
}

func (s *Store) Get(id string) (model.ScoreMouseEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	return ev, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Recent returns up to n stored events, newest first. n <= 0 means all.
func (s *Store) Recent(n int) []model.ResolvedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		n = len(s.order)
	}
	n = util.Min(n, len(s.order))
	res := make([]model.ResolvedEvent, 0, n)
	for i := len(s.order) - 1; i >= len(s.order)-n; i-- {
		id := s.order[i]
		res = append(res, model.ResolvedEvent{ID: id, Event: s.events[id]})
	}
	return res
}

// Session returns every stored event oldest first, the order the clicks
// arrived in.
func (s *Store) Session() []model.ResolvedEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]model.ResolvedEvent, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, model.ResolvedEvent{ID: id, Event: s.events[id]})
	}
	return res
}
