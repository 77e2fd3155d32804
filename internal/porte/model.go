package porte

import (
	"gorm.io/gorm"
)

// Statuts possibles d'une porte.
const (
	StatutNonVisite    = "NON_VISITE"
	StatutVisite       = "VISITE"
	StatutAbsent       = "ABSENT"
	StatutRefus        = "REFUS"
	StatutCurieux      = "CURIEUX"
	StatutRdv          = "RDV"
	StatutContratSigne = "CONTRAT_SIGNE"
)

var statutsValides = map[string]bool{
	StatutNonVisite:    true,
	StatutVisite:       true,
	StatutAbsent:       true,
	StatutRefus:        true,
	StatutCurieux:      true,
	StatutRdv:          true,
	StatutContratSigne: true,
}

func StatutValide(statut string) bool {
	return statutsValides[statut]
}

// Porte est une unité de prospection au sein d'un immeuble. Elle appartient
// exclusivement à son immeuble et disparaît avec lui.
type Porte struct {
	gorm.Model

	ImmeubleID  uint   `gorm:"not null;index" json:"immeubleId"`
	Etage       int    `json:"etage"`
	NumeroPorte string `gorm:"size:100" json:"numeroPorte"`
	Statut      string `gorm:"size:30;not null;default:NON_VISITE" json:"statut"`
	Passage     int    `json:"passage"`
	AssigneeID  *uint  `gorm:"index" json:"assigneeId"`
	Commentaire string `json:"commentaire"`
}
