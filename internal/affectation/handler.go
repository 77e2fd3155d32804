package affectation

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type assignerZoneRequest struct {
	ZoneID          uint   `json:"zoneId"`
	AssigneeID      uint   `json:"assigneeId"`
	TypeAssignation string `json:"typeAssignation"`
}

type objectifMensuelRequest struct {
	CommercialID uint `json:"commercialId"`
	Objectif     int  `json:"objectif"`
}

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// AssignerZone réassigne une zone
func (h *Handler) AssignerZone(w http.ResponseWriter, r *http.Request) {
	var req assignerZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.ZoneID == 0 || req.AssigneeID == 0 {
		http.Error(w, "zoneId et assigneeId sont requis", http.StatusBadRequest)
		return
	}

	z, err := h.Service.AssignerZone(req.ZoneID, req.AssigneeID, req.TypeAssignation)
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(z)
}

// DefinirObjectifMensuel fixe l'objectif mensuel d'un commercial
func (h *Handler) DefinirObjectifMensuel(w http.ResponseWriter, r *http.Request) {
	var req objectifMensuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.CommercialID == 0 {
		http.Error(w, "commercialId requis", http.StatusBadRequest)
		return
	}

	c, err := h.Service.DefinirObjectifMensuel(req.CommercialID, req.Objectif)
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ZonesPourManager liste les zones d'un manager
func (h *Handler) ZonesPourManager(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	zones, err := h.Service.ZonesPourManager(uint(id))
	if err != nil {
		http.Error(w, "erreur lors du listing des zones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(zones)
}

// ZonesPourCommercial liste les zones d'un commercial
func (h *Handler) ZonesPourCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	zones, err := h.Service.ZonesPourCommercial(uint(id))
	if err != nil {
		http.Error(w, "erreur lors du listing des zones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(zones)
}

// CommerciauxDansZone liste les commerciaux travaillant une zone
func (h *Handler) CommerciauxDansZone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	commerciaux, err := h.Service.CommerciauxDansZone(uint(id))
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(commerciaux)
}
