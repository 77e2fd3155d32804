package prospection

import (
	"errors"
	"fmt"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/immeuble"
	"github.com/moduleprospec/api-prospection/internal/notification"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service pilote le workflow de démarrage de prospection: génération et
// répartition des portes en solo, invitation puis acceptation/refus en duo.
type Service struct {
	DB          *gorm.DB
	Tx          func(fn func(tx *gorm.DB) error) error
	Demandes    Repository
	Immeubles   immeuble.Repository
	Commerciaux commercial.Repository
	Portes      porte.Repository
	Notifier    notification.Notifier
	Logger      *zap.Logger
}

func NewService(db *gorm.DB, notifier notification.Notifier, logger *zap.Logger) *Service {
	return &Service{
		DB:          db,
		Tx:          func(fn func(tx *gorm.DB) error) error { return db.Transaction(fn) },
		Demandes:    NewRepository(),
		Immeubles:   immeuble.NewRepository(),
		Commerciaux: commercial.NewRepository(),
		Portes:      porte.NewRepository(),
		Notifier:    notifier,
		Logger:      logger,
	}
}

// genererEtAssigner génère les portes de l'immeuble, les répartit entre les
// participants et attache ceux-ci comme prospecteurs. Refuse de régénérer
// un immeuble déjà pourvu: le compte de portes sert de verrou de
// provisionnement, vérifié dans la même transaction que la génération.
func (s *Service) genererEtAssigner(tx *gorm.DB, imm *immeuble.Immeuble, participants []commercial.Commercial) error {
	nb, err := s.Portes.CompterParImmeuble(tx, imm.ID)
	if err != nil {
		return err
	}
	if nb > 0 {
		return erreurs.Validation("les portes de cet immeuble ont déjà été générées")
	}

	ids := make([]uint, len(participants))
	for i, c := range participants {
		ids[i] = c.ID
	}
	portes, err := RepartirPortes(imm.ID, imm.NbEtages, imm.NbPortesParEtage, ids)
	if err != nil {
		return err
	}
	if err := s.Portes.CreerEnMasse(tx, portes); err != nil {
		return err
	}
	if err := s.Immeubles.AttacherProspecteurs(tx, imm.ID, participants); err != nil {
		return err
	}

	imm.Status = immeuble.StatusEnCours
	imm.NbPortesTotal = len(portes)
	return s.Immeubles.Sauvegarder(tx, imm)
}

// DemarrerProspection lance la prospection d'un immeuble. En solo les
// portes sont générées immédiatement; en duo une invitation PENDING est
// créée et le partenaire notifié hors transaction.
func (s *Service) DemarrerProspection(req DemarrerProspectionRequest) (*ResultatDemarrage, error) {
	switch req.Mode {
	case immeuble.ModeSolo:
		var res *ResultatDemarrage
		err := s.Tx(func(tx *gorm.DB) error {
			imm, err := s.Immeubles.TrouverParID(tx, req.ImmeubleID)
			if err != nil {
				return erreurs.NonTrouve(fmt.Sprintf("immeuble %d introuvable", req.ImmeubleID))
			}
			c, err := s.Commerciaux.TrouverParID(tx, req.CommercialID)
			if err != nil {
				return erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", req.CommercialID))
			}
			if err := s.genererEtAssigner(tx, imm, []commercial.Commercial{*c}); err != nil {
				return err
			}
			res = &ResultatDemarrage{Message: "Prospection solo démarrée, portes générées."}
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.Logger.Info("prospection solo démarrée",
			zap.Uint("immeubleId", req.ImmeubleID),
			zap.Uint("commercialId", req.CommercialID))
		return res, nil

	case immeuble.ModeDuo:
		if req.PartnerID == nil {
			return nil, erreurs.Validation("partnerId est requis en mode DUO")
		}

		var res *ResultatDemarrage
		var emailPartenaire, adresse string
		err := s.Tx(func(tx *gorm.DB) error {
			imm, err := s.Immeubles.TrouverParID(tx, req.ImmeubleID)
			if err != nil {
				return erreurs.NonTrouve(fmt.Sprintf("immeuble %d introuvable", req.ImmeubleID))
			}
			nb, err := s.Portes.CompterParImmeuble(tx, imm.ID)
			if err != nil {
				return err
			}
			if nb > 0 {
				return erreurs.Validation("les portes de cet immeuble ont déjà été générées")
			}

			demandeur, errDemandeur := s.Commerciaux.TrouverParID(tx, req.CommercialID)
			partenaire, errPartenaire := s.Commerciaux.TrouverParID(tx, *req.PartnerID)
			if errDemandeur != nil || errPartenaire != nil || demandeur.EquipeID != partenaire.EquipeID {
				return erreurs.Validation("partenaire invalide ou hors de l'équipe du demandeur")
			}

			demande := &ProspectionRequest{
				ImmeubleID:  req.ImmeubleID,
				RequesterID: req.CommercialID,
				PartnerID:   *req.PartnerID,
				Statut:      StatutEnAttente,
			}
			if err := s.Demandes.Creer(tx, demande); err != nil {
				return err
			}

			emailPartenaire = partenaire.Email
			adresse = imm.Adresse
			id := demande.ID
			res = &ResultatDemarrage{Message: "Invitation de prospection duo envoyée.", RequestID: &id}
			return nil
		})
		if err != nil {
			return nil, err
		}

		// Notification best effort, jamais bloquante pour la transition.
		go s.Notifier.Envoyer(
			emailPartenaire,
			"Invitation à une prospection duo",
			fmt.Sprintf("Vous êtes invité à une prospection en duo pour l'immeuble %s.", adresse),
		)
		s.Logger.Info("invitation duo créée",
			zap.Uint("immeubleId", req.ImmeubleID),
			zap.Uint("requesterId", req.CommercialID),
			zap.Uintp("partnerId", req.PartnerID))
		return res, nil

	default:
		return nil, erreurs.Validation("mode de prospection inconnu: " + req.Mode)
	}
}

// TraiterDemande accepte ou refuse une invitation PENDING. L'acceptation et
// la génération des portes partagent une transaction: si la répartition
// échoue (immeuble mal configuré), le passage à ACCEPTED est annulé et la
// demande reste PENDING.
func (s *Service) TraiterDemande(requestID uint, accept bool) (*ResultatDemarrage, error) {
	var res *ResultatDemarrage
	err := s.Tx(func(tx *gorm.DB) error {
		demande, err := s.Demandes.TrouverParID(tx, requestID)
		if err != nil || demande.Statut != StatutEnAttente {
			return erreurs.NonTrouve("demande de prospection introuvable ou déjà traitée")
		}

		if !accept {
			demande.Statut = StatutRefuse
			if err := s.Demandes.Sauvegarder(tx, demande); err != nil {
				return err
			}
			res = &ResultatDemarrage{Message: "Demande de prospection refusée."}
			return nil
		}

		demande.Statut = StatutAccepte
		if err := s.Demandes.Sauvegarder(tx, demande); err != nil {
			return err
		}

		imm, err := s.Immeubles.TrouverParID(tx, demande.ImmeubleID)
		if err != nil {
			return erreurs.NonTrouve(fmt.Sprintf("immeuble %d introuvable", demande.ImmeubleID))
		}
		demandeur, err := s.Commerciaux.TrouverParID(tx, demande.RequesterID)
		if err != nil {
			return erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", demande.RequesterID))
		}
		partenaire, err := s.Commerciaux.TrouverParID(tx, demande.PartnerID)
		if err != nil {
			return erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", demande.PartnerID))
		}

		if err := s.genererEtAssigner(tx, imm, []commercial.Commercial{*demandeur, *partenaire}); err != nil {
			return err
		}
		res = &ResultatDemarrage{Message: "Demande acceptée, portes générées.", ImmeubleID: &demande.ImmeubleID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Logger.Info("demande de prospection traitée",
		zap.Uint("requestId", requestID),
		zap.Bool("accept", accept))
	return res, nil
}

// DemandesEnAttentePour liste les invitations PENDING dont le commercial
// est le partenaire, enrichies de l'adresse et du demandeur.
func (s *Service) DemandesEnAttentePour(commercialID uint) ([]DemandeEnAttenteDTO, error) {
	demandes, err := s.Demandes.ListerEnAttenteParPartenaire(s.DB, commercialID)
	if err != nil {
		return nil, err
	}

	dtos := make([]DemandeEnAttenteDTO, 0, len(demandes))
	for _, d := range demandes {
		dto := DemandeEnAttenteDTO{
			ID:          d.ID,
			ImmeubleID:  d.ImmeubleID,
			RequesterID: d.RequesterID,
			CreatedAt:   d.CreatedAt,
		}
		if imm, err := s.Immeubles.TrouverParID(s.DB, d.ImmeubleID); err == nil {
			dto.Adresse = imm.Adresse
			dto.Ville = imm.Ville
			dto.CodePostal = imm.CodePostal
		}
		if demandeur, err := s.Commerciaux.TrouverParID(s.DB, d.RequesterID); err == nil {
			dto.RequesterNom = demandeur.Nom
			dto.RequesterPrenom = demandeur.Prenom
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// StatutDemande retourne le statut courant d'une demande.
func (s *Service) StatutDemande(requestID uint) (string, error) {
	demande, err := s.Demandes.TrouverParID(s.DB, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", erreurs.NonTrouve(fmt.Sprintf("demande %d introuvable", requestID))
		}
		return "", err
	}
	return demande.Statut, nil
}

// ListerDemandes retourne toutes les demandes, récentes en premier.
func (s *Service) ListerDemandes() ([]ProspectionRequest, error) {
	return s.Demandes.ListerTous(s.DB)
}
