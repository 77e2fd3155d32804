package prospection

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/notification"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB, notifier notification.Notifier, logger *zap.Logger) *Handler {
	return &Handler{Service: NewService(db, notifier, logger)}
}

// Demarrer lance une prospection solo ou duo
func (h *Handler) Demarrer(w http.ResponseWriter, r *http.Request) {
	var req DemarrerProspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.CommercialID == 0 || req.ImmeubleID == 0 {
		http.Error(w, "commercialId et immeubleId sont requis", http.StatusBadRequest)
		return
	}

	res, err := h.Service.DemarrerProspection(req)
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// TraiterDemande accepte ou refuse une invitation duo
func (h *Handler) TraiterDemande(w http.ResponseWriter, r *http.Request) {
	var req TraiterDemandeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload invalide", http.StatusBadRequest)
		return
	}
	if req.RequestID == 0 {
		http.Error(w, "requestId requis", http.StatusBadRequest)
		return
	}

	res, err := h.Service.TraiterDemande(req.RequestID, req.Accept)
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ListerDemandes retourne toutes les demandes de prospection
func (h *Handler) ListerDemandes(w http.ResponseWriter, r *http.Request) {
	demandes, err := h.Service.ListerDemandes()
	if err != nil {
		http.Error(w, "erreur lors du listing des demandes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(demandes)
}

// DemandesEnAttente retourne les invitations en attente pour un commercial
func (h *Handler) DemandesEnAttente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["commercialId"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	dtos, err := h.Service.DemandesEnAttentePour(uint(id))
	if err != nil {
		http.Error(w, "erreur lors du listing des demandes en attente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos)
}

// StatutDemande retourne le statut d'une demande
func (h *Handler) StatutDemande(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["requestId"])
	if err != nil {
		http.Error(w, "ID invalide", http.StatusBadRequest)
		return
	}

	statut, err := h.Service.StatutDemande(uint(id))
	if err != nil {
		erreurs.Repondre(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": statut})
}
