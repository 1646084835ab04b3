package views

import (
	"context"
	"sync"
	"time"

	"mission_control/viewer/client"
	"mission_control/viewer/diagnostics"
	"mission_control/viewer/models"

	"github.com/google/uuid"
)

const missionListSource = "mission-list"

// MissionLister is the part of the Mission API client the list needs.
type MissionLister interface {
	ListMissions() *client.Producer[[]models.Mission]
}

// MissionList fetches the mission list once and holds it for rendering.
// It starts in StateLoading and moves to StateLoaded when the fetch
// succeeds. A failed fetch is reported to the diagnostic sink and the view
// stays in StateLoading.
type MissionList struct {
	id     string
	lister MissionLister
	sink   diagnostics.Sink

	mu       sync.Mutex
	state    State
	missions []models.Mission
	started  bool
	disposed bool
	cancel   context.CancelFunc

	settled    chan struct{}
	settleOnce sync.Once
}

func NewMissionList(lister MissionLister, sink diagnostics.Sink) *MissionList {
	return &MissionList{
		id:      uuid.New().String(),
		lister:  lister,
		sink:    sink,
		state:   StateLoading,
		settled: make(chan struct{}),
	}
}

// ID identifies this view instance in diagnostics.
func (v *MissionList) ID() string {
	return v.id
}

// Load starts the fetch. Only the first call on a live view does anything.
func (v *MissionList) Load(ctx context.Context) {
	v.mu.Lock()
	if v.started || v.disposed {
		v.mu.Unlock()
		return
	}
	v.started = true
	ctx, v.cancel = context.WithCancel(ctx)
	producer := v.lister.ListMissions()
	v.mu.Unlock()

	go v.fetch(ctx, producer)
}

func (v *MissionList) fetch(ctx context.Context, producer *client.Producer[[]models.Mission]) {
	defer v.settle()

	missions, err := producer.Await(ctx)

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return
	}
	if err == nil {
		v.missions = missions
		v.state = StateLoaded
	}
	v.mu.Unlock()
	v.settle()

	if err != nil {
		v.sink.Report(ctx, diagnostics.Event{
			Source:  missionListSource,
			ViewID:  v.id,
			Message: "Failed to fetch missions",
			Error:   err.Error(),
			At:      time.Now(),
		})
	}
}

// Dispose cancels a pending fetch. Whatever it returns afterwards is dropped.
func (v *MissionList) Dispose() {
	v.mu.Lock()
	v.disposed = true
	if v.cancel != nil {
		v.cancel()
	}
	v.mu.Unlock()
	v.settle()
}

// Settled is closed once the fetch has resolved or the view was disposed.
func (v *MissionList) Settled() <-chan struct{} {
	return v.settled
}

func (v *MissionList) settle() {
	v.settleOnce.Do(func() { close(v.settled) })
}

func (v *MissionList) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	missions := make([]models.Mission, len(v.missions))
	copy(missions, v.missions)
	return Snapshot{State: v.state, Missions: missions}
}
