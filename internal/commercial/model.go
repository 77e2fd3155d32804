package commercial

import (
	"github.com/moduleprospec/api-prospection/internal/historique"
	"gorm.io/gorm"
)

// Commercial est un vendeur terrain rattaché à une équipe et un manager.
type Commercial struct {
	gorm.Model
	Nom             string `json:"nom"`
	Prenom          string `json:"prenom"`
	Email           string `json:"email" gorm:"unique"`
	Telephone       string `json:"telephone"`
	MotDePasse      string `json:"-"`
	EquipeID        uint   `gorm:"index" json:"equipeId"`
	ManagerID       uint   `gorm:"index" json:"managerId"`
	ObjectifMensuel int    `json:"objectifMensuel"`

	Historiques []historique.HistoriqueProspection `gorm:"foreignKey:CommercialID" json:"historiques,omitempty"`
}
