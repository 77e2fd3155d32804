package prospection

import "time"

// DemarrerProspectionRequest est le payload de POST /prospection/start.
type DemarrerProspectionRequest struct {
	CommercialID uint   `json:"commercialId"`
	ImmeubleID   uint   `json:"immeubleId"`
	Mode         string `json:"mode"`
	PartnerID    *uint  `json:"partnerId"`
}

// TraiterDemandeRequest est le payload de POST /prospection/handle-request.
type TraiterDemandeRequest struct {
	RequestID uint `json:"requestId"`
	Accept    bool `json:"accept"`
}

// ResultatDemarrage est la réponse au démarrage: en duo, RequestID porte
// l'identifiant de l'invitation créée.
type ResultatDemarrage struct {
	Message    string `json:"message"`
	RequestID  *uint  `json:"requestId,omitempty"`
	ImmeubleID *uint  `json:"immeubleId,omitempty"`
}

// DemandeEnAttenteDTO est une invitation en attente, enrichie pour
// l'affichage côté partenaire.
type DemandeEnAttenteDTO struct {
	ID              uint      `json:"id"`
	ImmeubleID      uint      `json:"immeubleId"`
	Adresse         string    `json:"adresse"`
	Ville           string    `json:"ville"`
	CodePostal      string    `json:"codePostal"`
	RequesterID     uint      `json:"requesterId"`
	RequesterNom    string    `json:"requesterNom"`
	RequesterPrenom string    `json:"requesterPrenom"`
	CreatedAt       time.Time `json:"createdAt"`
}
