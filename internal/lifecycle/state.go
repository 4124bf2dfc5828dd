package lifecycle

// State is a phase of the delayrun process.
type State int32

const (
	StateStartup State = iota
	StateWaiting
	StateRunning
	StateDraining
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateWaiting:
		return "waiting"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
