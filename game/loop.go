package game

import (
	"context"
	"time"
)

// Loop drives a Game from a wall-clock ticker. Frontends without their own
// frame loop (terminal, headless with real time) use it.
type Loop struct {
	game     *Game
	interval time.Duration
	now      func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// NewLoop creates a loop ticking hz times per second.
func NewLoop(g *Game, hz int) *Loop {
	if hz < 1 {
		hz = 60
	}
	return &Loop{
		game:     g,
		interval: time.Second / time.Duration(hz),
		now:      time.Now,
	}
}

// Run updates the game on every tick until ctx is cancelled or the game
// asks to quit. The in-flight frame always completes before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := l.now()
			l.game.Update(now.Sub(last).Seconds())
			l.game.RecordFrame()
			last = now
			if l.game.Quit() {
				return nil
			}
		}
	}
}

// Start runs the loop on its own goroutine, which then owns the game.
func (l *Loop) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go func() {
		defer close(l.done)
		l.err = l.Run(ctx)
	}()
}

// Done is closed when a started loop has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Stop cancels a started loop and waits for it to return.
func (l *Loop) Stop() error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()
	<-l.done
	return l.err
}

// RunFixed updates the game with a fixed frame delta until stop returns
// true or the game asks to quit. Headless runs use it to simulate faster
// than real time.
func RunFixed(g *Game, dt float64, stop func() bool) {
	for !g.Quit() && !stop() {
		g.Update(dt)
	}
}
