package manager

import (
	"github.com/moduleprospec/api-prospection/internal/equipe"
	"gorm.io/gorm"
)

// Manager encadre une ou plusieurs équipes de commerciaux.
type Manager struct {
	gorm.Model
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email" gorm:"unique"`
	Telephone  string `json:"telephone"`
	MotDePasse string `json:"-"`

	Equipes []equipe.Equipe `gorm:"foreignKey:ManagerID" json:"equipes,omitempty"`
}
