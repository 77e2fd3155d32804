package immeuble

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

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

// CreerImmeuble enregistre un nouvel immeuble. Le total de portes est
// dérivé des étages et portes par étage; les portes elles-mêmes ne sont
// générées qu'au démarrage de la prospection.
func (h *Handler) CreerImmeuble(w http.ResponseWriter, r *http.Request) {
	var req CreerImmeubleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.Adresse == "" || req.Ville == "" {
		http.Error(w, "adresse et ville sont requises", http.StatusBadRequest)
		return
	}

	status := req.Status
	if status == "" {
		if req.NbEtages > 0 && req.NbPortesParEtage > 0 {
			status = StatusNonCommence
		} else {
			status = StatusNonConfigure
		}
	}
	mode := req.ProspectingMode
	if mode == "" {
		mode = ModeSolo
	}
	if mode != ModeSolo && mode != ModeDuo {
		http.Error(w, "mode de prospection inconnu", http.StatusBadRequest)
		return
	}

	i := Immeuble{
		Adresse:            req.Adresse,
		Ville:              req.Ville,
		CodePostal:         req.CodePostal,
		Status:             status,
		NbEtages:           req.NbEtages,
		NbPortesParEtage:   req.NbPortesParEtage,
		NbPortesTotal:      req.NbEtages * req.NbPortesParEtage,
		ProspectingMode:    mode,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		HasElevator:        req.HasElevator,
		Digicode:           req.Digicode,
		DateDerniereVisite: req.DateDerniereVisite,
		ZoneID:             req.ZoneID,
	}
	if err := h.Repository.Creer(h.DB, &i); err != nil {
		http.Error(w, "erreur lors de la création de l'immeuble", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// ListerImmeubles retourne tous les immeubles
func (h *Handler) ListerImmeubles(w http.ResponseWriter, r *http.Request) {
	immeubles, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des immeubles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(immeubles)
}

// TrouverParID retourne un immeuble avec portes et prospecteurs
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	i, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "immeuble introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(i)
}

// MettreAJourImmeuble modifie un immeuble existant
func (h *Handler) MettreAJourImmeuble(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var req CreerImmeubleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.MettreAJour(h.DB, uint(id), &req); err != nil {
		http.Error(w, "erreur lors de la mise à jour de l'immeuble", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("immeuble mis à jour avec succès"))
}

// SupprimerImmeuble retire un immeuble et ses portes
func (h *Handler) SupprimerImmeuble(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression de l'immeuble", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("immeuble supprimé avec succès"))
}
