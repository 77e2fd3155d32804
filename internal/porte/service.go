package porte

import (
	"errors"
	"fmt"
	"time"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/historique"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeltaHistorique est la contribution d'un changement de statut aux
// compteurs journaliers.
type DeltaHistorique struct {
	Visites  int
	Contrats int
	Rdv      int
	Refus    int
	Absents  int
	Curieux  int
}

func (d DeltaHistorique) EstVide() bool {
	return d == DeltaHistorique{}
}

// DeltaPourStatut traduit le nouveau statut d'une porte en incréments de
// compteurs. Le retour à NON_VISITE ne produit aucun delta: les compteurs
// journaliers ne sont jamais décrémentés.
func DeltaPourStatut(statut string) DeltaHistorique {
	switch statut {
	case StatutVisite:
		return DeltaHistorique{Visites: 1}
	case StatutContratSigne:
		return DeltaHistorique{Visites: 1, Contrats: 1}
	case StatutRdv:
		return DeltaHistorique{Visites: 1, Rdv: 1}
	case StatutRefus:
		return DeltaHistorique{Visites: 1, Refus: 1}
	case StatutAbsent:
		return DeltaHistorique{Visites: 1, Absents: 1}
	case StatutCurieux:
		return DeltaHistorique{Visites: 1, Curieux: 1}
	default:
		return DeltaHistorique{}
	}
}

// MiseAJourPorte est le patch appliqué à une porte. Les champs nil sont
// laissés tels quels.
type MiseAJourPorte struct {
	NumeroPorte *string `json:"numeroPorte"`
	Etage       *int    `json:"etage"`
	Statut      *string `json:"statut"`
	Passage     *int    `json:"passage"`
	Commentaire *string `json:"commentaire"`
}

// Service applique les mises à jour de portes et replie chaque changement
// de statut dans l'historique journalier du commercial assigné.
type Service struct {
	Tx          func(fn func(tx *gorm.DB) error) error
	Portes      Repository
	Historiques historique.Repository
	Logger      *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		Tx:          func(fn func(tx *gorm.DB) error) error { return db.Transaction(fn) },
		Portes:      NewRepository(),
		Historiques: historique.NewRepository(),
		Logger:      logger,
	}
}

// MettreAJourPorte persiste le patch puis, si le statut a réellement changé
// et que la porte a un assigné, incrémente la ligne d'historique du jour.
// Lecture, cumul et écriture de la ligne partagent la même transaction pour
// éviter les pertes d'incréments entre mises à jour concurrentes.
func (s *Service) MettreAJourPorte(id uint, patch MiseAJourPorte) (*Porte, error) {
	var result *Porte
	err := s.Tx(func(tx *gorm.DB) error {
		p, err := s.Portes.TrouverParID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return erreurs.NonTrouve(fmt.Sprintf("porte %d introuvable", id))
			}
			return err
		}

		ancienStatut := p.Statut
		if patch.NumeroPorte != nil {
			p.NumeroPorte = *patch.NumeroPorte
		}
		if patch.Etage != nil {
			p.Etage = *patch.Etage
		}
		if patch.Passage != nil {
			p.Passage = *patch.Passage
		}
		if patch.Commentaire != nil {
			p.Commentaire = *patch.Commentaire
		}
		if patch.Statut != nil {
			if !StatutValide(*patch.Statut) {
				return erreurs.Validation("statut de porte inconnu: " + *patch.Statut)
			}
			p.Statut = *patch.Statut
		}

		// La porte est sauvegardée même sans changement de statut et même
		// sans assigné.
		if err := s.Portes.Sauvegarder(tx, p); err != nil {
			return err
		}
		result = p

		if p.Statut == ancienStatut || p.AssigneeID == nil || p.ImmeubleID == 0 {
			return nil
		}
		delta := DeltaPourStatut(p.Statut)
		if delta.EstVide() {
			return nil
		}

		var commentaire string
		if patch.Commentaire != nil {
			commentaire = *patch.Commentaire
		}
		return s.replierDelta(tx, *p.AssigneeID, p.ImmeubleID, delta, commentaire)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) replierDelta(tx *gorm.DB, commercialID, immeubleID uint, delta DeltaHistorique, commentaire string) error {
	jour := historique.DebutJournee(time.Now())

	ligne, err := s.Historiques.TrouverParJourVerrouille(tx, commercialID, immeubleID, jour)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Le commentaire n'est écrit qu'à la création de la ligne; les
		// incréments suivants du jour n'y touchent plus.
		ligne = &historique.HistoriqueProspection{
			CommercialID:     commercialID,
			ImmeubleID:       immeubleID,
			DateProspection:  jour,
			NbPortesVisitees: delta.Visites,
			NbContratsSignes: delta.Contrats,
			NbRdvPris:        delta.Rdv,
			NbRefus:          delta.Refus,
			NbAbsents:        delta.Absents,
			NbCurieux:        delta.Curieux,
			Commentaire:      commentaire,
		}
		if err := s.Historiques.Creer(tx, ligne); err != nil {
			return err
		}
		s.Logger.Info("ligne d'historique créée",
			zap.Uint("commercialId", commercialID),
			zap.Uint("immeubleId", immeubleID),
			zap.Time("jour", jour))
		return nil
	}
	if err != nil {
		return err
	}

	ligne.NbPortesVisitees += delta.Visites
	ligne.NbContratsSignes += delta.Contrats
	ligne.NbRdvPris += delta.Rdv
	ligne.NbRefus += delta.Refus
	ligne.NbAbsents += delta.Absents
	ligne.NbCurieux += delta.Curieux
	return s.Historiques.Sauvegarder(tx, ligne)
}
