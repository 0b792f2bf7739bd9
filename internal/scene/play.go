package scene

import (
	"fmt"

	"github.com/example/acrylicreveal/internal/host"
)

const (
	// DefaultStep is the playback frame interval in milliseconds.
	DefaultStep = 16.0
	// Settle is how long playback runs past the last scripted event when no
	// end time is given, enough for a released ripple to finish.
	Settle = 1000.0
)

// PlayOptions controls Play. Zero values pick DefaultStep and the script
// duration plus Settle.
type PlayOptions struct {
	Until float64
	Step  float64
	// OnFrame runs after every frame has been painted.
	OnFrame func(frame float64) error
}

// Play replays the layout's script through d, advancing q at a fixed step
// from frame 0, and returns the last frame.
func Play(l *Layout, d *host.Dispatcher, q *host.FrameQueue, opts PlayOptions) (float64, error) {
	step := opts.Step
	if step <= 0 {
		step = DefaultStep
	}
	until := opts.Until
	if until <= 0 {
		until = l.Scene.Duration() + Settle
	}

	script := l.Scene.Script
	next := 0
	frame := 0.0
	for {
		for next < len(script) && script[next].At <= frame {
			in, err := script[next].Input()
			if err != nil {
				return frame, fmt.Errorf("script[%d]: %w", next, err)
			}
			d.Dispatch(in)
			next++
		}
		q.Advance(frame)
		if opts.OnFrame != nil {
			if err := opts.OnFrame(frame); err != nil {
				return frame, err
			}
		}
		if frame >= until {
			return frame, nil
		}
		frame = min(frame+step, until)
	}
}
