package commercial

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/auth"
	"github.com/moduleprospec/api-prospection/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

type creerCommercialRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	Telephone  string `json:"telephone"`
	MotDePasse string `json:"motDePasse"`
	EquipeID   uint   `json:"equipeId"`
	ManagerID  uint   `json:"managerId"`
}

// Handler encapsule DB et repository
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

	c, err := h.Repository.TrouverParEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "identifiants invalides", http.StatusUnauthorized)
		return
	}

	if !utils.VerifierMotDePasse(c.MotDePasse, req.MotDePasse) {
		http.Error(w, "mot de passe incorrect", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenererToken(c.ID, auth.RoleCommercial)
	if err != nil {
		http.Error(w, "erreur lors de la génération du token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CreerCommercial enregistre un nouveau commercial
func (h *Handler) CreerCommercial(w http.ResponseWriter, r *http.Request) {
	var req creerCommercialRequest
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

	c := Commercial{
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		Telephone:  req.Telephone,
		MotDePasse: hash,
		EquipeID:   req.EquipeID,
		ManagerID:  req.ManagerID,
	}

	if err := h.Repository.Creer(h.DB, &c); err != nil {
		http.Error(w, "erreur lors de la création du commercial", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListerCommerciaux retourne tous les commerciaux avec leurs historiques
func (h *Handler) ListerCommerciaux(w http.ResponseWriter, r *http.Request) {
	commerciaux, err := h.Repository.ListerTous(h.DB)
	if err != nil {
		http.Error(w, "erreur lors du listing des commerciaux", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(commerciaux)
}

// TrouverParID retourne un commercial par son ID
func (h *Handler) TrouverParID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "commercial introuvable", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ObtenirResume construit le DTO de résumé d'activité
func (h *Handler) ObtenirResume(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.TrouverParID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "commercial introuvable", http.StatusNotFound)
		return
	}

	dto := ConstruireResumeCommercialDTO(*c, c.Historiques)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}

// MettreAJourCommercial modifie un commercial existant
func (h *Handler) MettreAJourCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	var donnees Commercial
	if err := json.NewDecoder(r.Body).Decode(&donnees); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if err := h.Repository.MettreAJour(h.DB, uint(id), &donnees); err != nil {
		http.Error(w, "erreur lors de la mise à jour du commercial", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("commercial mis à jour avec succès"))
}

// SupprimerCommercial retire un commercial
func (h *Handler) SupprimerCommercial(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Supprimer(h.DB, uint(id)); err != nil {
		http.Error(w, "erreur lors de la suppression du commercial", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("commercial supprimé avec succès"))
}

// Me retourne le commercial connecté
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.CtxUserID).(uint)
	if !ok {
		http.Error(w, "non authentifié", http.StatusUnauthorized)
		return
	}

	var c Commercial
	if err := h.DB.First(&c, userID).Error; err != nil {
		http.Error(w, "commercial introuvable", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
