package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
)

// ErrHubClosed is returned by Subscribe after Close.
var ErrHubClosed = errors.New("event hub closed")

// Hub fans events out to in-process subscribers. Sends never block: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	bufferSize int
	metrics    *metrics.Metrics
	logger     *slog.Logger

	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	closed bool
}

// Subscription receives the events its filter accepts until closed.
type Subscription struct {
	id    uint64
	hub   *Hub
	ch    chan Message
	types map[domain.EventType]struct{}
	once  sync.Once
}

// NewHub returns a hub with per-subscriber buffers of bufferSize. m may be nil.
func NewHub(bufferSize int, m *metrics.Metrics, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		bufferSize: max(bufferSize, 1),
		metrics:    m,
		logger:     logger,
		subs:       make(map[uint64]*Subscription),
	}
}

// Name identifies the hub as a sink in metrics.
func (h *Hub) Name() string { return "hub" }

// Subscribe registers a subscriber. With no types it receives every event.
func (h *Hub) Subscribe(types ...domain.EventType) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	h.nextID++
	sub := &Subscription{
		id:  h.nextID,
		hub: h,
		ch:  make(chan Message, h.bufferSize),
	}
	if len(types) > 0 {
		sub.types = make(map[domain.EventType]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}
	h.subs[sub.id] = sub

	if h.metrics != nil {
		h.metrics.StreamClients.Inc()
	}
	h.logger.Info("stream client connected", slog.Uint64("subscriber", sub.id), slog.Int("clients", len(h.subs)))

	return sub, nil
}

// Publish implements ports.EventPublisher.
func (h *Hub) Publish(_ context.Context, e domain.Event) error {
	msg, err := Encode(e)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if !sub.accepts(e.Type) {
			continue
		}
		select {
		case sub.ch <- msg:
		default:
			if h.metrics != nil {
				h.metrics.EventsDropped.Inc()
			}
			h.logger.Warn("stream client too slow, event dropped",
				slog.Uint64("subscriber", sub.id),
				slog.String("event", string(e.Type)),
			)
		}
	}
	return nil
}

// Clients returns the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close ends every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.closed = true
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.ch)

	if h.metrics != nil {
		h.metrics.StreamClients.Dec()
	}
	h.logger.Info("stream client disconnected", slog.Uint64("subscriber", sub.id), slog.Int("clients", len(h.subs)))
}

// Events returns the subscription's channel. It is closed when the
// subscription or the hub closes.
func (s *Subscription) Events() <-chan Message {
	return s.ch
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

func (s *Subscription) accepts(t domain.EventType) bool {
	if s.types == nil {
		return true
	}
	_, ok := s.types[t]
	return ok
}
