package affectation

import (
	"fmt"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/equipe"
	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/manager"
	"github.com/moduleprospec/api-prospection/internal/zone"
	"gorm.io/gorm"
)

// Service gère l'assignation des zones (équipe, manager ou commercial) et
// les objectifs mensuels des commerciaux.
type Service struct {
	DB          *gorm.DB
	Zones       zone.Repository
	Equipes     equipe.Repository
	Managers    manager.Repository
	Commerciaux commercial.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:          db,
		Zones:       zone.NewRepository(),
		Equipes:     equipe.NewRepository(),
		Managers:    manager.NewRepository(),
		Commerciaux: commercial.NewRepository(),
	}
}

// AssignerZone réassigne une zone à une équipe, un manager ou un
// commercial; les deux autres références sont remises à zéro.
func (s *Service) AssignerZone(zoneID, assigneeID uint, typeAssignation string) (*zone.Zone, error) {
	z, err := s.Zones.TrouverParID(s.DB, zoneID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("zone %d introuvable", zoneID))
	}

	z.TypeAssignation = typeAssignation
	z.EquipeID = nil
	z.ManagerID = nil
	z.CommercialID = nil

	switch typeAssignation {
	case zone.AssignationEquipe:
		if _, err := s.Equipes.TrouverParID(s.DB, assigneeID); err != nil {
			return nil, erreurs.NonTrouve(fmt.Sprintf("équipe %d introuvable", assigneeID))
		}
		z.EquipeID = &assigneeID
	case zone.AssignationManager:
		if _, err := s.Managers.TrouverParID(s.DB, assigneeID); err != nil {
			return nil, erreurs.NonTrouve(fmt.Sprintf("manager %d introuvable", assigneeID))
		}
		z.ManagerID = &assigneeID
	case zone.AssignationCommercial:
		if _, err := s.Commerciaux.TrouverParID(s.DB, assigneeID); err != nil {
			return nil, erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", assigneeID))
		}
		z.CommercialID = &assigneeID
	default:
		return nil, erreurs.Validation("type d'assignation inconnu: " + typeAssignation)
	}

	if err := s.Zones.Sauvegarder(s.DB, z); err != nil {
		return nil, err
	}
	return z, nil
}

// DefinirObjectifMensuel fixe l'objectif de contrats du mois d'un commercial.
func (s *Service) DefinirObjectifMensuel(commercialID uint, objectif int) (*commercial.Commercial, error) {
	if objectif < 0 {
		return nil, erreurs.Validation("l'objectif mensuel ne peut pas être négatif")
	}
	c, err := s.Commerciaux.TrouverParID(s.DB, commercialID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", commercialID))
	}

	c.ObjectifMensuel = objectif
	if err := s.Commerciaux.Sauvegarder(s.DB, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ZonesPourManager liste les zones assignées directement à un manager.
func (s *Service) ZonesPourManager(managerID uint) ([]zone.Zone, error) {
	return s.Zones.ListerParManager(s.DB, managerID)
}

// ZonesPourCommercial liste les zones assignées directement à un commercial.
func (s *Service) ZonesPourCommercial(commercialID uint) ([]zone.Zone, error) {
	return s.Zones.ListerParCommercial(s.DB, commercialID)
}

// CommerciauxDansZone retourne les commerciaux qui travaillent une zone:
// celui assigné en direct, ou ceux de l'équipe assignée.
func (s *Service) CommerciauxDansZone(zoneID uint) ([]commercial.Commercial, error) {
	z, err := s.Zones.TrouverParID(s.DB, zoneID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("zone %d introuvable", zoneID))
	}

	if z.CommercialID != nil {
		c, err := s.Commerciaux.TrouverParID(s.DB, *z.CommercialID)
		if err != nil {
			return nil, err
		}
		return []commercial.Commercial{*c}, nil
	}
	if z.EquipeID != nil {
		return s.Commerciaux.ListerParEquipe(s.DB, *z.EquipeID)
	}
	return []commercial.Commercial{}, nil
}
