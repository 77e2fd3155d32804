package porte

import (
	"gorm.io/gorm"
)

type Repository interface {
	Creer(db *gorm.DB, p *Porte) error
	CreerEnMasse(db *gorm.DB, portes []Porte) error
	Sauvegarder(db *gorm.DB, p *Porte) error
	TrouverParID(db *gorm.DB, id uint) (*Porte, error)
	ListerTous(db *gorm.DB) ([]Porte, error)
	ListerParImmeuble(db *gorm.DB, immeubleID uint) ([]Porte, error)
	CompterParImmeuble(db *gorm.DB, immeubleID uint) (int64, error)
	Supprimer(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Creer(db *gorm.DB, p *Porte) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) CreerEnMasse(db *gorm.DB, portes []Porte) error {
	return db.Create(&portes).Error
}

func (r *repositoryImpl) Sauvegarder(db *gorm.DB, p *Porte) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) TrouverParID(db *gorm.DB, id uint) (*Porte, error) {
	var p Porte
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) ListerTous(db *gorm.DB) ([]Porte, error) {
	var portes []Porte
	err := db.Order("immeuble_id, etage, id").Find(&portes).Error
	return portes, err
}

func (r *repositoryImpl) ListerParImmeuble(db *gorm.DB, immeubleID uint) ([]Porte, error) {
	var portes []Porte
	err := db.Where("immeuble_id = ?", immeubleID).
		Order("etage, id").
		Find(&portes).Error
	return portes, err
}

func (r *repositoryImpl) CompterParImmeuble(db *gorm.DB, immeubleID uint) (int64, error) {
	var n int64
	err := db.Model(&Porte{}).Where("immeuble_id = ?", immeubleID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Supprimer(db *gorm.DB, id uint) error {
	return db.Delete(&Porte{}, id).Error
}
