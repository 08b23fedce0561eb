package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal/position"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type PositionPages struct {
	renderer *Renderer
	service  position.ServiceAPI
}

func NewPositionPages(renderer *Renderer, service position.ServiceAPI) *PositionPages {
	return &PositionPages{renderer: renderer, service: service}
}

func (p *PositionPages) Index(w http.ResponseWriter, r *http.Request) {
	positions, err := p.service.GetAll()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "position/index", "Positions", positions)
}

func (p *PositionPages) Details(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pos, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "position/details", pos.Name, pos)
}

func (p *PositionPages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "position/form", "New position", nil)
}

func (p *PositionPages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := position.CreatePositionDTO{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Position/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Position created.")
	http.Redirect(w, r, "/Position", http.StatusSeeOther)
}

func (p *PositionPages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pos, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "position/form", "Edit position", pos)
}

func (p *PositionPages) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	bodyID, err := formInt64(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := position.ReplacePositionDTO{
		ID:          bodyID,
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Status:      r.PostFormValue("status"),
	}

	if _, err := p.service.Replace(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Position/Edit/"+r.PostFormValue("id"), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Position updated.")
	http.Redirect(w, r, "/Position", http.StatusSeeOther)
}

func (p *PositionPages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Position deleted.")
	}
	http.Redirect(w, r, "/Position", http.StatusSeeOther)
}
