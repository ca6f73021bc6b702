package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/jml312/domino-train/pkg/domain"
)

// AllTopics receives every broadcast regardless of puzzle key.
const AllTopics = "*"

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // Topic -> Set of Channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

// Subscribe registers a channel for topic and returns it with its cancel func.
func (sm *StreamManager) Subscribe(topic string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[topic]; !ok {
		sm.subscribers[topic] = make(map[chan<- string]struct{})
	}
	sm.subscribers[topic][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[topic]; ok {
			if _, live := subs[ch]; !live {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, topic)
			}
		}
	}
}

// Broadcast sends msg to the subscribers of topic and of AllTopics.
// Slow clients drop messages instead of blocking the solver.
func (sm *StreamManager) Broadcast(topic string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for _, t := range []string{topic, AllTopics} {
		for ch := range sm.subscribers[t] {
			select {
			case ch <- msg:
			default:
				slog.Warn("SSE: Client buffer full, dropping message", "topic", t)
			}
		}
		if topic == AllTopics {
			break
		}
	}
}

// Hooks returns solver hooks that broadcast every solve as JSON, on the
// puzzle key topic.
func (s *Server) Hooks() domain.SolveHooks {
	return domain.SolveHooks{
		OnSolved: func(_ context.Context, e *domain.SolveEvent) {
			payload, err := json.Marshal(e)
			if err != nil {
				s.logger.Error("SSE: encode solve event failed", "err", err)
				return
			}
			s.Streams.Broadcast(e.Key, string(payload))
		},
	}
}

// SubscribeEvents handles the GET /events request (SSE).
// ?key= limits the stream to one puzzle key.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	topic := r.URL.Query().Get("key")
	if topic == "" {
		topic = AllTopics
	}

	ch, cancel := s.Streams.Subscribe(topic)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected", "topic", topic)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: solved\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
