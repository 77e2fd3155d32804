package zone

import (
	"github.com/moduleprospec/api-prospection/internal/immeuble"
	"gorm.io/gorm"
)

// Types d'assignation d'une zone.
const (
	AssignationEquipe     = "EQUIPE"
	AssignationManager    = "MANAGER"
	AssignationCommercial = "COMMERCIAL"
)

func TypeAssignationValide(t string) bool {
	return t == AssignationEquipe || t == AssignationManager || t == AssignationCommercial
}

// Zone est un territoire circulaire assigné à une équipe, un manager ou un
// commercial — un seul des trois ids est renseigné, selon TypeAssignation.
type Zone struct {
	gorm.Model
	Nom             string  `json:"nom" gorm:"uniqueIndex:idx_zone_nom_type"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	RayonMetres     float64 `json:"rayonMetres"`
	Couleur         string  `json:"couleur"`
	TypeAssignation string  `gorm:"size:20;not null;uniqueIndex:idx_zone_nom_type" json:"typeAssignation"`

	EquipeID     *uint `gorm:"index" json:"equipeId"`
	ManagerID    *uint `gorm:"index" json:"managerId"`
	CommercialID *uint `gorm:"index" json:"commercialId"`

	Immeubles []immeuble.Immeuble `gorm:"foreignKey:ZoneID" json:"immeubles,omitempty"`
}
