package ircapture

import "sync/atomic"

// runGuard tracks whether a device is started. A start whose arm step fails
// leaves it stopped, so Start can be retried.
type runGuard struct {
	running atomic.Bool
}

func (g *runGuard) start(arm func() error) error {
	if !g.running.CompareAndSwap(false, true) {
		return nil
	}
	if err := arm(); err != nil {
		g.running.Store(false)
		return err
	}
	return nil
}

func (g *runGuard) stop(disarm func() error) error {
	if !g.running.CompareAndSwap(true, false) {
		return nil
	}
	return disarm()
}
