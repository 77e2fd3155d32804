package equipe

import (
	"github.com/moduleprospec/api-prospection/internal/commercial"
	"gorm.io/gorm"
)

// Equipe regroupe des commerciaux sous un manager. Le nom est unique par
// manager.
type Equipe struct {
	gorm.Model
	Nom       string `json:"nom" gorm:"uniqueIndex:idx_equipe_nom_manager"`
	ManagerID uint   `json:"managerId" gorm:"uniqueIndex:idx_equipe_nom_manager;index"`

	Commerciaux []commercial.Commercial `gorm:"foreignKey:EquipeID" json:"commerciaux,omitempty"`
}
