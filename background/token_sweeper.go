// Package background contains jobs that run independently of the HTTP
// request-response cycle. The only job here is the revoked-token sweeper,
// which keeps the logout denylist from growing without bound: a revoked
// token only needs to stay on the list until it would have expired anyway.
package background

import (
	"context"
	"log"
	"time"

	"github.com/user/profileapi-go/auth"
)

// sweepInterval is how often expired denylist entries are pruned. Tokens
// live 24 hours, so hourly pruning keeps the table within a day's churn.
const sweepInterval = time.Hour

// StartTokenSweeper launches the sweeper goroutine. It prunes once at
// startup, then on every tick, and exits when stopChan is closed — the same
// stop-channel contract main.go uses for graceful shutdown.
func StartTokenSweeper(revoked auth.TokenRevocations, stopChan <-chan struct{}) {
	go func() {
		defer log.Println("Revoked-token sweeper stopped.")

		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		sweep(revoked)
		for {
			select {
			case <-ticker.C:
				sweep(revoked)
			case <-stopChan:
				return
			}
		}
	}()
}

// sweep deletes denylist rows whose tokens have already expired.
func sweep(revoked auth.TokenRevocations) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pruned, err := revoked.DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Printf("Revoked-token sweeper: prune failed: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("Revoked-token sweeper: pruned %d expired entries", pruned)
	}
}
