package historique

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Creer(db *gorm.DB, h *HistoriqueProspection) error
	Sauvegarder(db *gorm.DB, h *HistoriqueProspection) error
	// TrouverParJourVerrouille charge la ligne du jour avec un verrou
	// SELECT ... FOR UPDATE; à appeler uniquement dans une transaction.
	TrouverParJourVerrouille(db *gorm.DB, commercialID, immeubleID uint, jour time.Time) (*HistoriqueProspection, error)
	ListerParCommercial(db *gorm.DB, commercialID uint) ([]HistoriqueProspection, error)
	ListerParImmeuble(db *gorm.DB, immeubleID uint) ([]HistoriqueProspection, error)
	ListerParCommerciaux(db *gorm.DB, commercialIDs []uint) ([]HistoriqueProspection, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, h *HistoriqueProspection) error {
	return db.Create(h).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, h *HistoriqueProspection) error {
	return db.Save(h).Error
}

func (r *repositoryImpl) TrouverParJourVerrouille(db *gorm.DB, commercialID, immeubleID uint, jour time.Time) (*HistoriqueProspection, error) {
	var h HistoriqueProspection
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("commercial_id = ? AND immeuble_id = ? AND date_prospection = ?", commercialID, immeubleID, jour).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repositoryImpl) ListerParCommercial(db *gorm.DB, commercialID uint) ([]HistoriqueProspection, error) {
	var lignes []HistoriqueProspection
	err := db.Where("commercial_id = ?", commercialID).
		Order("date_prospection DESC").
		Find(&lignes).Error
	return lignes, err
}

func (r *repositoryImpl) ListerParImmeuble(db *gorm.DB, immeubleID uint) ([]HistoriqueProspection, error) {
	var lignes []HistoriqueProspection
	err := db.Where("immeuble_id = ?", immeubleID).
		Order("date_prospection DESC").
		Find(&lignes).Error
	return lignes, err
}

func (r *repositoryImpl) ListerParCommerciaux(db *gorm.DB, commercialIDs []uint) ([]HistoriqueProspection, error) {
	if len(commercialIDs) == 0 {
		return nil, nil
	}
	var lignes []HistoriqueProspection
	err := db.Where("commercial_id IN ?", commercialIDs).Find(&lignes).Error
	return lignes, err
}
