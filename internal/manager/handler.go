package manager

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/auth"
	"github.com/moduleprospec/api-prospection/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

type creerManagerRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	MotDePasse string `json:"motDePasse"`
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

// Login génère un JWT pour des identifiants valides
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}

	m, err := h.Repository.TrouverParEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "identifiants invalides", http.StatusUnauthorized)
		return
	}

	if !utils.VerifierMotDePasse(m.MotDePasse, req.MotDePasse) {
		http.Error(w, "mot de passe incorrect", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenererToken(m.ID, auth.RoleManager)
	if err != nil {
		http.Error(w, "erreur lors de la génération du token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CreerManager enregistre un nouveau manager
func (h *Handler) CreerManager(w http.ResponseWriter, r *http.Request) {
	var req creerManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.Nom == "" || req.Prenom == "" || req.Email == "" {
		http.Error(w, "nom, prenom et email sont requis", http.StatusBadRequest)
		return
	}

	motDePasse := req.MotDePasse
	if motDePasse == "" {
		genere, err := utils.GenererMotDePasseTemporaire()
		if err != nil {
			http.Error(w, "erreur lors de la génération du mot de passe", http.StatusInternalServerError)
			return
		}
		motDePasse = genere
	}
	hash, err := utils.HasherMotDePasse(motDePasse)
	if err != nil {
		http.Error(w, "erreur lors du traitement du mot de passe", http.StatusInternalServerError)
		return
	}

	m := Manager{
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		Telephone:  req.Telephone,
		MotDePasse: hash,
	}

	if err := h.Repository.Creer(h.DB, &m); err != nil {
		http.Error(w, "erreur lors de la création du manager", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListerManagers retourne tous les managers
func (h *Handler) ListerManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des managers", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(managers)
}

// TrouverParID retourne un manager avec ses équipes
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "manager introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// MettreAJourManager modifie un manager existant
func (h *Handler) MettreAJourManager(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var donnees Manager
	if err := json.NewDecoder(r.Body).Decode(&donnees); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.MettreAJour(h.DB, uint(id), &donnees); err != nil {
		http.Error(w, "erreur lors de la mise à jour du manager", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("manager mis à jour avec succès"))
}

// SupprimerManager retire un manager
func (h *Handler) SupprimerManager(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression du manager", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("manager supprimé avec succès"))
}
