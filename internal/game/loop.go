package game

import (
	"context"
	"time"
)

// LoopHook runs on the loop goroutine right before every update.
type LoopHook func(m *Manager, now time.Time)

// RunLoop drives m on a fixed ticker until ctx is cancelled or the manager
// stops. The ticker is the refresh callback; the manager's own frame gate
// decides when a simulation frame actually runs. A non-positive every
// refreshes twice per frame interval.
func RunLoop(ctx context.Context, m *Manager, every time.Duration, hooks ...LoopHook) error {
	if every <= 0 {
		every = m.cfg.Timing.FrameInterval() / 2
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			for _, hook := range hooks {
				hook(m, now)
			}
			m.Update(now)
			if m.state == StateStopped {
				return m.err
			}
		}
	}
}

// AutoStart holds the start key while the manager waits for it in Ready
// and releases it otherwise. Headless runs use it in place of a player.
func AutoStart(m *Manager, _ time.Time) {
	key := m.cfg.Gameplay.StartKey
	if m.listenStart && m.state == StateReady {
		m.keys.Press(key)
		return
	}
	m.keys.Release(key)
}
