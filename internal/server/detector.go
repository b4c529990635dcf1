package server

import (
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ipWindow counts one client's traffic inside its current window
type ipWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector keeps per-IP request and failed-auth counts over a
// fixed window. Only the TrackedIPLimit most recently seen addresses are kept.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *lru.Cache[string, *ipWindow]
	now     func() time.Time
}

// NewSuspiciousActivityDetector creates an empty detector
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	windows, err := lru.New[string, *ipWindow](TrackedIPLimit)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &SuspiciousActivityDetector{windows: windows, now: time.Now}
}

// window returns the live counters of ip, starting a new window when the old one expired.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	now := s.now()
	w, ok := s.windows.Get(ip)
	if !ok || now.Sub(w.start) > RateWindow {
		w = &ipWindow{start: now}
		s.windows.Add(ip, w)
	}
	return w
}

// RecordFailedAuth counts a rejected API key and alerts once the threshold is reached
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failedAuth++
	if w.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
}

// RecordRequest counts a request and reports false once ip is over its budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++
	if w.requests <= MaxRequestsPerWindow {
		return true
	}
	if w.requests%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// Counts returns the requests and failed auths of ip in its current window
func (s *SuspiciousActivityDetector) Counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows.Peek(ip)
	if !ok || s.now().Sub(w.start) > RateWindow {
		return 0, 0
	}
	return w.requests, w.failedAuth
}
