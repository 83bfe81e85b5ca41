package services

import (
	"context"
	"time"

	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

// Refresher drives a periodic reload, the way the browser screens refresh
// on a timer. Each tick runs the load in its own goroutine: a slow load is
// never cancelled by the next tick, so loads may overlap and the last one
// to complete wins the cache.
type Refresher struct {
	Interval time.Duration
	StopChan chan struct{}
	load     func(context.Context) error
}

func NewRefresher(interval time.Duration, load func(context.Context) error) *Refresher {
	return &Refresher{
		Interval: interval,
		StopChan: make(chan struct{}),
		load:     load,
	}
}

func (r *Refresher) Start() {
	go func() {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				go func() {
					if err := r.load(context.Background()); err != nil {
						utils.ErrorLogger.Printf("periodic refresh failed: %v", err)
					}
				}()
			case <-r.StopChan:
				return
			}
		}
	}()
}

func (r *Refresher) Stop() {
	close(r.StopChan)
}
