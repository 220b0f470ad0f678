package dash

// IndicatorState is the derived online/offline classification of one polled
// endpoint family.
type IndicatorState int

const (
	StateUnknown IndicatorState = iota
	StateOnline
	StateOffline
)

// String returns a human-readable state label.
func (s IndicatorState) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Indicator tracks the health of one endpoint family (stats or proxy). It
// starts Unknown, flips to Online on any successful poll and to Offline on
// any failure. There is no hysteresis: a single outcome flips the state, and
// Unknown is never re-entered after the first poll completes.
type Indicator struct {
	state IndicatorState
}

// Observe records the outcome of the most recent applied poll.
func (i *Indicator) Observe(ok bool) {
	if ok {
		i.state = StateOnline
	} else {
		i.state = StateOffline
	}
}

// State returns the current classification.
func (i *Indicator) State() IndicatorState {
	return i.state
}
