package netmon

// Static is a Monitor pinned to a fixed state. Используется в тестах
// и для флага -offline.
type Static struct {
	state State
}

var _ Monitor = (*Static)(nil)

// NewStatic returns a monitor that always reports the given state.
func NewStatic(online bool) *Static {
	return &Static{state: stateOf(online)}
}

func (s *Static) State() State {
	return s.state
}

// Subscribe is a no-op: a static monitor never transitions.
func (s *Static) Subscribe(fn func(online bool)) {}
