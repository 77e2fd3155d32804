package equipe

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type creerEquipeRequest struct {
	Nom       string `json:"nom"`
	ManagerID uint   `json:"managerId"`
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

// CreerEquipe enregistre une nouvelle équipe
func (h *Handler) CreerEquipe(w http.ResponseWriter, r *http.Request) {
	var req creerEquipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.Nom == "" || req.ManagerID == 0 {
		http.Error(w, "nom et managerId sont requis", http.StatusBadRequest)
		return
	}

	e := Equipe{Nom: req.Nom, ManagerID: req.ManagerID}
	if err := h.Repository.Creer(h.DB, &e); err != nil {
		http.Error(w, "erreur lors de la création de l'équipe", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// ListerEquipes retourne toutes les équipes
func (h *Handler) ListerEquipes(w http.ResponseWriter, r *http.Request) {
	equipes, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des équipes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(equipes)
}

// TrouverParID retourne une équipe avec ses commerciaux
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	e, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "équipe introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

// MettreAJourEquipe modifie une équipe existante
func (h *Handler) MettreAJourEquipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var donnees Equipe
	if err := json.NewDecoder(r.Body).Decode(&donnees); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.MettreAJour(h.DB, uint(id), &donnees); err != nil {
		http.Error(w, "erreur lors de la mise à jour de l'équipe", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("équipe mise à jour avec succès"))
}

// SupprimerEquipe retire une équipe
func (h *Handler) SupprimerEquipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression de l'équipe", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("équipe supprimée avec succès"))
}
