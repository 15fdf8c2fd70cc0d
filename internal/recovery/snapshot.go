package recovery

// PreviewState describes what the current sum resolves to.
type PreviewState string

const (
	PreviewWaiting  PreviewState = "waiting"
	PreviewInvalid  PreviewState = "invalid"
	PreviewResolved PreviewState = "resolved"
)

// Snapshot is a read-only copy of everything a display needs after a change.
type Snapshot struct {
	State    State
	Position int
	Target   int
	Inputs   []int
	Sum      int
	Preview  PreviewState
	Word     string
	Index    int
	Words    []string
}

// Snapshot captures the session's display state. Mutating the result does
// not affect the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Position: s.Position(),
		Target:   s.target,
		Inputs:   s.Inputs(),
		Sum:      s.sum,
		Preview:  PreviewWaiting,
		Words:    s.Words(),
	}
	if s.sum > 0 {
		snap.Preview = PreviewInvalid
		if word, idx, ok := s.Preview(); ok {
			snap.Preview = PreviewResolved
			snap.Word = word
			snap.Index = idx
		}
	}
	return snap
}
