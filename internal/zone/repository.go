package zone

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, z *Zone) error
	Sauvegarder(db *gorm.DB, z *Zone) error
	TrouverParID(db *gorm.DB, id uint) (*Zone, error)
	ListerTous(db *gorm.DB) ([]Zone, error)
	ListerParManager(db *gorm.DB, managerID uint) ([]Zone, error)
	ListerParCommercial(db *gorm.DB, commercialID uint) ([]Zone, error)
	MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Zone) error
	Supprimer(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, z *Zone) error {
	return db.Create(z).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, z *Zone) error {
	return db.Save(z).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Zone, error) {
	var z Zone
	err := db.Preload("Immeubles.Portes").First(&z, id).Error
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Zone, error) {
	var zones []Zone
	err := db.Preload("Immeubles").Find(&zones).Error
	return zones, err
}

func (r *repositoryImpl) ListerParManager(db *gorm.DB, managerID uint) ([]Zone, error) {
	var zones []Zone
	err := db.Where("manager_id = ?", managerID).Find(&zones).Error
	return zones, err
}

func (r *repositoryImpl) ListerParCommercial(db *gorm.DB, commercialID uint) ([]Zone, error) {
	var zones []Zone
	err := db.Where("commercial_id = ?", commercialID).Find(&zones).Error
	return zones, err
}

func (r *repositoryImpl) MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *Zone) error {
	var existante Zone
	if err := db.First(&existante, id).Error; err != nil {
		return err
	}

	existante.Nom = nouvellesDonnees.Nom
	existante.Latitude = nouvellesDonnees.Latitude
	existante.Longitude = nouvellesDonnees.Longitude
	existante.RayonMetres = nouvellesDonnees.RayonMetres
	existante.Couleur = nouvellesDonnees.Couleur
	if nouvellesDonnees.TypeAssignation != "" {
		existante.TypeAssignation = nouvellesDonnees.TypeAssignation
		existante.EquipeID = nouvellesDonnees.EquipeID
		existante.ManagerID = nouvellesDonnees.ManagerID
		existante.CommercialID = nouvellesDonnees.CommercialID
	}

	return db.Save(&existante).Error
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Delete(&Zone{}, id).Error
}
