package handlers

import (
	"bytes"
	"net/http"
	"time"

	"mission_control/viewer/diagnostics"
	"mission_control/viewer/metrics"
	"mission_control/viewer/views"

	"go.uber.org/zap"
)

// Pages serves the HTML screens of the viewer.
type Pages struct {
	lister   views.MissionLister
	sink     diagnostics.Sink
	renderer *views.Renderer
	loadWait time.Duration
}

func NewPages(lister views.MissionLister, sink diagnostics.Sink, renderer *views.Renderer, loadWait time.Duration) *Pages {
	return &Pages{
		lister:   lister,
		sink:     sink,
		renderer: renderer,
		loadWait: loadWait,
	}
}

// HomeHandler hosts the mission list. It waits up to loadWait for the
// list to settle, then renders whatever state the view is in.
func (p *Pages) HomeHandler(w http.ResponseWriter, r *http.Request) {
	view := views.NewMissionList(p.lister, p.sink)
	defer view.Dispose()

	view.Load(r.Context())

	timer := time.NewTimer(p.loadWait)
	defer timer.Stop()
	select {
	case <-view.Settled():
	case <-timer.C:
	case <-r.Context().Done():
		return
	}

	snap := view.Snapshot()
	p.render(w, views.PageHome, &snap, http.StatusOK)
}

// StaticHandler serves a page that has no data of its own.
func (p *Pages) StaticHandler(page views.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, page, nil, http.StatusOK)
	}
}

func (p *Pages) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	p.render(w, views.PageNotFound, nil, http.StatusNotFound)
}

func (p *Pages) render(w http.ResponseWriter, page views.Page, snap *views.Snapshot, code int) {
	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, page, snap); err != nil {
		zap.L().Error("failed to render page", zap.String("page", page.String()), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	state := "static"
	if snap != nil {
		state = snap.State.String()
	}
	metrics.PageRenders.WithLabelValues(page.String(), state).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}
