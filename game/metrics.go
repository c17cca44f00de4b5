package game

import (
	"sync/atomic"

	"github.com/lixenwraith/portfolio-walk/status"
)

// Metric keys published to the status registry
const (
	MetricFrames        = "world.frames"
	MetricElapsedSec    = "world.elapsed_sec"
	MetricShows         = "proximity.shows"
	MetricHides         = "proximity.hides"
	MetricActiveExhibit = "proximity.active"
	MetricMobile        = "input.mobile"
	MetricSpeed         = "avatar.speed"
	MetricPeakSpeed     = "avatar.peak_speed"
	MetricLoading       = "loading.progress"
)

// metrics caches registry pointers so the frame loop stores without lookups
type metrics struct {
	frames   *atomic.Int64
	shows    *atomic.Int64
	hides    *atomic.Int64
	mobile   *atomic.Bool
	elapsed  *status.AtomicFloat
	speed    *status.AtomicFloat
	peak     *status.AtomicFloat
	progress *status.AtomicFloat
	active   *status.AtomicString
}

func newMetrics(r *status.Registry) metrics {
	return metrics{
		frames:   r.Ints.Get(MetricFrames),
		shows:    r.Ints.Get(MetricShows),
		hides:    r.Ints.Get(MetricHides),
		mobile:   r.Bools.Get(MetricMobile),
		elapsed:  r.Floats.Get(MetricElapsedSec),
		speed:    r.Floats.Get(MetricSpeed),
		peak:     r.Floats.Get(MetricPeakSpeed),
		progress: r.Floats.Get(MetricLoading),
		active:   r.Strings.Get(MetricActiveExhibit),
	}
}
