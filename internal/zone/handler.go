package zone

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type creerZoneRequest struct {
	Nom             string  `json:"nom"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RayonMetres     float64 `json:"rayonMetres"`
	Couleur         string  `json:"couleur"`
	TypeAssignation string  `json:"typeAssignation"`
	EquipeID        *uint   `json:"equipeId"`
	ManagerID       *uint   `json:"managerId"`
	CommercialID    *uint   `json:"commercialId"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CreerZone enregistre une nouvelle zone
func (h *Handler) CreerZone(w http.ResponseWriter, r *http.Request) {
	var req creerZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.Nom == "" {
		http.Error(w, "nom requis", http.StatusBadRequest)
		return
	}
	if !TypeAssignationValide(req.TypeAssignation) {
		http.Error(w, "type d'assignation inconnu", http.StatusBadRequest)
		return
	}

	z := Zone{
		Nom:             req.Nom,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		RayonMetres:     req.RayonMetres,
		Couleur:         req.Couleur,
		TypeAssignation: req.TypeAssignation,
		EquipeID:        req.EquipeID,
		ManagerID:       req.ManagerID,
		CommercialID:    req.CommercialID,
	}
	if err := h.Repository.Creer(h.DB, &z); err != nil {
		http.Error(w, "erreur lors de la création de la zone", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(z)
}

// ListerZones retourne toutes les zones
func (h *Handler) ListerZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des zones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(zones)
}

// TrouverParID retourne une zone avec ses immeubles
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	z, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "zone introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(z)
}

// MettreAJourZone modifie une zone existante
func (h *Handler) MettreAJourZone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var req creerZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	donnees := Zone{
		Nom:             req.Nom,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		RayonMetres:     req.RayonMetres,
		Couleur:         req.Couleur,
		TypeAssignation: req.TypeAssignation,
		EquipeID:        req.EquipeID,
		ManagerID:       req.ManagerID,
		CommercialID:    req.CommercialID,
	}
	if err := h.Repository.MettreAJour(h.DB, uint(id), &donnees); err != nil {
		http.Error(w, "erreur lors de la mise à jour de la zone", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("zone mise à jour avec succès"))
}

// SupprimerZone retire une zone
func (h *Handler) SupprimerZone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression de la zone", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("zone supprimée avec succès"))
}
