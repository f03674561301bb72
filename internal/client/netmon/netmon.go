// Package netmon отслеживает доступность удаленного сервера.
//
// The rest of the client never probes the network itself: it asks the
// monitor for the current state and subscribes to transitions.
package netmon

// State represents the last known connectivity state.
type State int

const (
	StateOffline State = iota
	StateOnline
)

func (s State) String() string {
	if s == StateOnline {
		return "online"
	}
	return "offline"
}

// Monitor определяет интерфейс наблюдателя за соединением.
type Monitor interface {
	// State returns the current connectivity state.
	State() State

	// Subscribe registers a callback fired exactly once per transition.
	// Callbacks run on the monitor's polling goroutine and must not block.
	Subscribe(fn func(online bool))
}
