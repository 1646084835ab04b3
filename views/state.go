package views

import "mission_control/viewer/models"

// State is the observable state of a mission list view.
type State int

const (
	StateLoading State = iota
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// Snapshot is a point-in-time copy of a view's state, safe to render.
type Snapshot struct {
	State    State
	Missions []models.Mission
}
