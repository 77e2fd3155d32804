package manager

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, m *Manager) error
	TrouverParID(db *gorm.DB, id uint) (*Manager, error)
	TrouverParEmail(db *gorm.DB, email string) (*Manager, error)
	ListerTous(db *gorm.DB) ([]Manager, error)
	MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Manager) error
	Supprimer(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, m *Manager) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Manager, error) {
	var m Manager
	err := db.Preload("Equipes.Commerciaux.Historiques").First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) TrouverParEmail(db *gorm.DB, email string) (*Manager, error) {
	var m Manager
	if err := db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Manager, error) {
	var managers []Manager
	err := db.Preload("Equipes").Find(&managers).Error
	return managers, err
}

func (r *repositoryImpl) MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Manager) error {
	var existant Manager
	if err := db.First(&existant, id).Error; err != nil {
		return err
	}

	existant.Nom = nouvellesDonnees.Nom
	existant.Prenom = nouvellesDonnees.Prenom
	existant.Email = nouvellesDonnees.Email
	existant.Telephone = nouvellesDonnees.Telephone

	return db.Save(&existant).Error
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Delete(&Manager{}, id).Error
}
