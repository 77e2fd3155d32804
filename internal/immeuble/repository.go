package immeuble

import (
	"github.com/moduleprospec/api-prospection/internal/commercial"
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, i *Immeuble) error
	Sauvegarder(db *gorm.DB, i *Immeuble) error
	TrouverParID(db *gorm.DB, id uint) (*Immeuble, error)
	ListerTous(db *gorm.DB) ([]Immeuble, error)
	ListerParZone(db *gorm.DB, zoneID uint) ([]Immeuble, error)
	MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *CreerImmeubleRequest) error
	Supprimer(db *gorm.DB, id uint) error
	AttacherProspecteurs(db *gorm.DB, immeubleID uint, commerciaux []commercial.Commercial) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, i *Immeuble) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, i *Immeuble) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Immeuble, error) {
	var i Immeuble
	err := db.Preload("Portes").Preload("Prospecteurs").First(&i, id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Immeuble, error) {
	var immeubles []Immeuble
	err := db.Preload("Prospecteurs").Find(&immeubles).Error
	return immeubles, err
}

func (r *repositoryImpl) ListerParZone(db *gorm.DB, zoneID uint) ([]Immeuble, error) {
	var immeubles []Immeuble
	err := db.Where("zone_id = ?", zoneID).Preload("Portes").Find(&immeubles).Error
	return immeubles, err
}

func (r *repositoryImpl) MettreAJour(db *gorm.DB, id uint, nouvellesDonnees *CreerImmeubleRequest) error {
	var existant Immeuble
	if err := db.First(&existant, id).Error; err != nil {
		return err
	}

	existant.Adresse = nouvellesDonnees.Adresse
	existant.Ville = nouvellesDonnees.Ville
	existant.CodePostal = nouvellesDonnees.CodePostal
	if nouvellesDonnees.Status != "" {
		existant.Status = nouvellesDonnees.Status
	}
	existant.NbEtages = nouvellesDonnees.NbEtages
	existant.NbPortesParEtage = nouvellesDonnees.NbPortesParEtage
	existant.NbPortesTotal = nouvellesDonnees.NbEtages * nouvellesDonnees.NbPortesParEtage
	if nouvellesDonnees.ProspectingMode != "" {
		existant.ProspectingMode = nouvellesDonnees.ProspectingMode
	}
	existant.Latitude = nouvellesDonnees.Latitude
	existant.Longitude = nouvellesDonnees.Longitude
	existant.HasElevator = nouvellesDonnees.HasElevator
	existant.Digicode = nouvellesDonnees.Digicode
	existant.DateDerniereVisite = nouvellesDonnees.DateDerniereVisite
	existant.ZoneID = nouvellesDonnees.ZoneID

	return db.Save(&existant).Error
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Select("Portes").Delete(&Immeuble{Model: gorm.Model{ID: id}}).Error
}

func (r *repositoryImpl) AttacherProspecteurs(db *gorm.DB, immeubleID uint, commerciaux []commercial.Commercial) error {
	i := Immeuble{Model: gorm.Model{ID: immeubleID}}
	return db.Model(&i).Association("Prospecteurs").Append(&commerciaux)
}
