package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"mission_control/viewer/models"
)

// NoDescription stands in for a missing mission description.
const NoDescription = "No description provided."

//go:embed templates/*.html
var templateFS embed.FS

// Card is one mission as it appears in the grid.
type Card struct {
	Name        string
	Status      string
	Class       string
	Description string
	CrewCount   int64
	Created     string
}

// Cards maps missions to cards, keeping server order.
func Cards(missions []models.Mission, dateLayout string) []Card {
	cards := make([]Card, 0, len(missions))
	for _, m := range missions {
		class := "mission-card"
		if status := models.StatusClass(m.Status); status != "" {
			class += " " + status
		}

		description := NoDescription
		if m.Description != nil && *m.Description != "" {
			description = *m.Description
		}

		var created string
		if !m.CreatedAt.IsZero() {
			created = m.CreatedAt.Format(dateLayout)
		}

		cards = append(cards, Card{
			Name:        m.Name,
			Status:      m.Status,
			Class:       class,
			Description: description,
			CrewCount:   m.CrewCount,
			Created:     created,
		})
	}
	return cards
}

type missionListData struct {
	State       string
	Cards       []Card
	Placeholder bool
}

type pageData struct {
	Page     string
	Title    string
	Missions *missionListData
}

// Renderer turns pages and view snapshots into HTML
type Renderer struct {
	pages      map[Page]*template.Template
	dateLayout string
}

func NewRenderer(dateLayout string) (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html", "templates/mission_list.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{
		pages:      make(map[Page]*template.Template, len(pageNames)),
		dateLayout: dateLayout,
	}
	for page, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		tmpl, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes page. snap is the state of the page's mission list, nil
// for pages without one.
func (r *Renderer) Render(w io.Writer, page Page, snap *Snapshot) error {
	tmpl, ok := r.pages[page]
	if !ok {
		tmpl = r.pages[PageNotFound]
	}

	if page == PageHome && snap == nil {
		snap = &Snapshot{State: StateLoading}
	}

	data := pageData{
		Page:  page.String(),
		Title: page.Title(),
	}
	if snap != nil {
		cards := Cards(snap.Missions, r.dateLayout)
		data.Missions = &missionListData{
			State:       snap.State.String(),
			Cards:       cards,
			Placeholder: snap.State == StateLoading || len(cards) == 0,
		}
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}
