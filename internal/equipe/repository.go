package equipe

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, e *Equipe) error
	TrouverParID(db *gorm.DB, id uint) (*Equipe, error)
	ListerTous(db *gorm.DB) ([]Equipe, error)
	MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Equipe) error
	Supprimer(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, e *Equipe) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Equipe, error) {
	var e Equipe
	err := db.Preload("Commerciaux.Historiques").First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Equipe, error) {
	var equipes []Equipe
	err := db.Preload("Commerciaux").Find(&equipes).Error
	return equipes, err
}

func (r *repositoryImpl) MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Equipe) error {
	var existante Equipe
	if err := db.First(&existante, id).Error; err != nil {
		return err
	}

	existante.Nom = nouvellesDonnees.Nom
	if nouvellesDonnees.ManagerID != 0 {
		existante.ManagerID = nouvellesDonnees.ManagerID
	}

	return db.Save(&existante).Error
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Delete(&Equipe{}, id).Error
}
