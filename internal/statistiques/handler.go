package statistiques

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// StatsGlobales retourne KPIs, classement et courbe mensuelle
func (h *Handler) StatsGlobales(w http.ResponseWriter, r *http.Request) {
	dto, err := h.Service.StatsGlobales()
	if err != nil {
		http.Error(w, "erreur lors du calcul des statistiques", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// StatsCommercial retourne les KPIs d'un commercial
func (h *Handler) StatsCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	dto, err := h.Service.StatsCommercial(uint(id))
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// StatsEquipe retourne les KPIs cumulés d'une équipe
func (h *Handler) StatsEquipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	dto, err := h.Service.StatsEquipe(uint(id))
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// StatsZone retourne la couverture d'une zone
func (h *Handler) StatsZone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	dto, err := h.Service.StatsZone(uint(id))
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}
