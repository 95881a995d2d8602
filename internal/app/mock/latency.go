package mock

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// waitLatency blocks for a uniform-random interval in [base, 2*base)
// when latency simulation is enabled, and returns immediately otherwise.
// It runs after the handler has fully mutated the store, never
// mid-mutation, so every call stays atomic.
func (s *Server) waitLatency() {
	if !s.hasLatency {
		return
	}
	time.Sleep(s.baseLatency + time.Duration(rand.Int63n(int64(s.baseLatency))))
}

// respond applies the simulated latency and hands back a deep copy of
// the value. The copy is a JSON round trip, standing in for
// serialization across a real wire: callers can never observe later
// mutations of server-internal state through a returned value, and the
// server can never observe caller mutations.
func respond[T any](s *Server, v T) (T, error) {
	s.waitLatency()
	return deepCopy(v)
}

// fail applies the simulated latency and returns the error. Errors are
// terminal for the call; the mock never retries.
func fail[T any](s *Server, err error) (T, error) {
	var zero T
	s.logger.Debug("mock server throw", zap.Error(err))
	s.waitLatency()
	return zero, err
}

// failVoid is fail for operations with no payload.
func (s *Server) failVoid(err error) error {
	s.logger.Debug("mock server throw", zap.Error(err))
	s.waitLatency()
	return err
}

func deepCopy[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("mock: encode response: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("mock: decode response: %w", err)
	}
	return out, nil
}
