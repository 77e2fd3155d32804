package prospection

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, demande *ProspectionRequest) error
	Sauvegarder(db *gorm.DB, demande *ProspectionRequest) error
	TrouverParID(db *gorm.DB, id uint) (*ProspectionRequest, error)
	ListerTous(db *gorm.DB) ([]ProspectionRequest, error)
	ListerEnAttenteParPartenaire(db *gorm.DB, partnerID uint) ([]ProspectionRequest, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, demande *ProspectionRequest) error {
	return db.Create(demande).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, demande *ProspectionRequest) error {
	return db.Save(demande).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*ProspectionRequest, error) {
	var demande ProspectionRequest
	if err := db.First(&demande, id).Error; err != nil {
		return nil, err
	}
	return &demande, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]ProspectionRequest, error) {
	var demandes []ProspectionRequest
	err := db.Order("created_at DESC").Find(&demandes).Error
	return demandes, err
}

func (r *repositoryImpl) ListerEnAttenteParPartenaire(db *gorm.DB, partnerID uint) ([]ProspectionRequest, error) {
	var demandes []ProspectionRequest
	err := db.Where("partner_id = ? AND statut = ?", partnerID, StatutEnAttente).
		Order("created_at DESC").
		Find(&demandes).Error
	return demandes, err
}
