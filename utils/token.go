package utils

import (
	"sync"
	"time"
)

// RevocationList remembers logged-out token ids until they expire.
type RevocationList struct {
	mu      sync.RWMutex
	tokens  map[string]time.Time
	stop    chan struct{}
	stopped sync.Once
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		tokens: make(map[string]time.Time),
		stop:   make(chan struct{}),
	}
}

func (rl *RevocationList) Revoke(tokenID string, expiry time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.tokens[tokenID] = expiry
}

func (rl *RevocationList) IsRevoked(tokenID string) bool {
	rl.mu.RLock()
	expiry, exists := rl.tokens[tokenID]
	rl.mu.RUnlock()
	return exists && time.Now().Before(expiry)
}

// Cleanup drops entries whose token would have expired anyway.
func (rl *RevocationList) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, expiry := range rl.tokens {
		if now.After(expiry) {
			delete(rl.tokens, id)
			removed++
		}
	}
	return removed
}

func (rl *RevocationList) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					InfoLogger.Debugf("revocation list: dropped %d expired tokens", n)
				}
			case <-rl.stop:
				return
			}
		}
	}()
}

func (rl *RevocationList) Stop() {
	rl.stopped.Do(func() { close(rl.stop) })
}
