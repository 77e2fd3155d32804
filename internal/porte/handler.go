package porte

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type creerPorteRequest struct {
	ImmeubleID  uint   `json:"immeubleId"`
	Etage       int    `json:"etage"`
	NumeroPorte string `json:"numeroPorte"`
	Statut      string `json:"statut"`
	Passage     int    `json:"passage"`
	AssigneeID  *uint  `json:"assigneeId"`
	Commentaire string `json:"commentaire"`
}

// Handler encapsule DB, repository et service d'agrégation
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Service    *Service
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Service:    NewService(db, logger),
	}
}

// CreerPorte ajoute une porte isolée à un immeuble
func (h *Handler) CreerPorte(w http.ResponseWriter, r *http.Request) {
	var req creerPorteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.ImmeubleID == 0 {
		http.Error(w, "immeubleId requis", http.StatusBadRequest)
		return
	}
	statut := req.Statut
	if statut == "" {
		statut = StatutNonVisite
	}
	if !StatutValide(statut) {
		http.Error(w, "statut de porte inconnu", http.StatusBadRequest)
		return
	}

	p := Porte{
		ImmeubleID:  req.ImmeubleID,
		Etage:       req.Etage,
		NumeroPorte: req.NumeroPorte,
		Statut:      statut,
		Passage:     req.Passage,
		AssigneeID:  req.AssigneeID,
		Commentaire: req.Commentaire,
	}
	if err := h.Repository.Creer(h.DB, &p); err != nil {
		http.Error(w, "erreur lors de la création de la porte", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListerPortes retourne toutes les portes
func (h *Handler) ListerPortes(w http.ResponseWriter, r *http.Request) {
	portes, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des portes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(portes)
}

// TrouverParID retourne une porte par son ID
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "porte introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// MettreAJour applique un patch sur la porte et replie le changement de
// statut dans l'historique journalier
func (h *Handler) MettreAJour(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var patch MiseAJourPorte
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}

	p, err := h.Service.MettreAJourPorte(uint(id), patch)
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// ListerParImmeuble retourne les portes d'un immeuble
func (h *Handler) ListerParImmeuble(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	portes, err := h.Repository.ListerParImmeuble(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erreur lors du listing des portes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(portes)
}

// SupprimerPorte retire une porte
func (h *Handler) SupprimerPorte(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression de la porte", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("porte supprimée avec succès"))
}
