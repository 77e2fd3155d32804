package immeuble

import (
	"time"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"gorm.io/gorm"
)

// Statuts d'un immeuble dans le cycle de prospection.
const (
	StatusNonConfigure = "NON_CONFIGURE"
	StatusNonCommence  = "NON_COMMENCE"
	StatusEnCours      = "EN_COURS"
	StatusComplet      = "COMPLET"
)

// Modes de prospection.
const (
	ModeSolo = "SOLO"
	ModeDuo  = "DUO"
)

// Immeuble est une adresse à prospecter. Il possède ses portes (supprimées
// avec lui) et référence les commerciaux qui le travaillent.
// Invariant: une fois les portes générées, NbPortesTotal == len(Portes).
type Immeuble struct {
	gorm.Model
	Adresse    string `json:"adresse"`
	Ville      string `json:"ville"`
	CodePostal string `json:"codePostal"`
	Status     string `gorm:"size:30;not null;default:NON_CONFIGURE" json:"status"`

	NbEtages         int `json:"nbEtages"`
	NbPortesParEtage int `json:"nbPortesParEtage"`
	NbPortesTotal    int `json:"nbPortesTotal"`

	ProspectingMode string `gorm:"size:10;not null;default:SOLO" json:"prospectingMode"`

	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	HasElevator bool    `json:"hasElevator"`
	Digicode    string  `json:"digicode"`

	DateDerniereVisite *time.Time `json:"dateDerniereVisite"`

	ZoneID *uint `gorm:"index" json:"zoneId"`

	Portes       []porte.Porte           `gorm:"foreignKey:ImmeubleID;constraint:OnDelete:CASCADE" json:"portes,omitempty"`
	Prospecteurs []commercial.Commercial `gorm:"many2many:immeuble_prospecteurs" json:"prospecteurs,omitempty"`
}
