package dash

// TimelineCap is the number of points the rolling series retains.
const TimelineCap = 20

// TimelinePoint is one sample of the blocked-IP-count-over-time series.
type TimelinePoint struct {
	Label string // poll completion time, e.g. "14:02:31"
	Value int
}

// Timeline is a bounded FIFO sequence of TimelinePoints. One point is
// appended per successful stats poll; the oldest point is evicted once the
// capacity is exceeded. This is the only dashboard state that accumulates
// across polls.
type Timeline struct {
	capacity int
	points   []TimelinePoint
}

// NewTimeline creates a timeline with the given capacity.
func NewTimeline(capacity int) *Timeline {
	if capacity <= 0 {
		capacity = TimelineCap
	}
	return &Timeline{
		capacity: capacity,
		points:   make([]TimelinePoint, 0, capacity),
	}
}

// Append adds a point, evicting the oldest when the timeline is full.
func (t *Timeline) Append(p TimelinePoint) {
	if len(t.points) == t.capacity {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.capacity-1]
	}
	t.points = append(t.points, p)
}

// Points returns a copy of the points, oldest first.
func (t *Timeline) Points() []TimelinePoint {
	out := make([]TimelinePoint, len(t.points))
	copy(out, t.points)
	return out
}

// Values returns the point values, oldest first, for graph rendering.
func (t *Timeline) Values() []float64 {
	out := make([]float64, len(t.points))
	for i, p := range t.points {
		out[i] = float64(p.Value)
	}
	return out
}

// Len returns the number of points currently held.
func (t *Timeline) Len() int {
	return len(t.points)
}
