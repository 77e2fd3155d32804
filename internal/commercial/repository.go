package commercial

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, c *Commercial) error
	Sauvegarder(db *gorm.DB, c *Commercial) error
	TrouverParID(db *gorm.DB, id uint) (*Commercial, error)
	TrouverParEmail(db *gorm.DB, email string) (*Commercial, error)
	ListerTous(db *gorm.DB) ([]Commercial, error)
	ListerParEquipe(db *gorm.DB, equipeID uint) ([]Commercial, error)
	MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Commercial) error
	Supprimer(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, c *Commercial) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, c *Commercial) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Commercial, error) {
	var c Commercial
	err := db.Preload("Historiques").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) TrouverParEmail(db *gorm.DB, email string) (*Commercial, error) {
	var c Commercial
	if err := db.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Commercial, error) {
	var commerciaux []Commercial
	err := db.Preload("Historiques").Find(&commerciaux).Error
	return commerciaux, err
}

func (r *repositoryImpl) ListerParEquipe(db *gorm.DB, equipeID uint) ([]Commercial, error) {
	var commerciaux []Commercial
	err := db.Where("equipe_id = ?", equipeID).Preload("Historiques").Find(&commerciaux).Error
	return commerciaux, err
}

func (r *repositoryImpl) MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Commercial) error {
	var existant Commercial
	if err := db.First(&existant, id).Error; err != nil {
		return err
	}

	existant.Nom = nouvellesDonnees.Nom
	existant.Prenom = nouvellesDonnees.Prenom
	existant.Email = nouvellesDonnees.Email
	existant.Telephone = nouvellesDonnees.Telephone
	if nouvellesDonnees.EquipeID != 0 {
		existant.EquipeID = nouvellesDonnees.EquipeID
	}
	if nouvellesDonnees.ManagerID != 0 {
		existant.ManagerID = nouvellesDonnees.ManagerID
	}

	return db.Save(&existant).Error
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Delete(&Commercial{}, id).Error
}
