package prospection

import (
	"gorm.io/gorm"
)

// Statuts d'une demande de prospection duo. PENDING est le seul état non
// terminal: une demande acceptée ou refusée ne bouge plus.
const (
	StatutEnAttente = "PENDING"
	StatutAccepte   = "ACCEPTED"
	StatutRefuse    = "REFUSED"
)

// ProspectionRequest est l'invitation envoyée au partenaire pour une
// prospection en duo. Elle référence les deux commerciaux sans les posséder.
type ProspectionRequest struct {
	gorm.Model
	ImmeubleID  uint   `gorm:"not null;index" json:"immeubleId"`
	RequesterID uint   `gorm:"not null;index" json:"requesterId"`
	PartnerID   uint   `gorm:"not null;index" json:"partnerId"`
	Statut      string `gorm:"size:20;not null;default:PENDING" json:"statut"`
}
