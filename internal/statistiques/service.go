package statistiques

import (
	"fmt"
	"sort"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/equipe"
	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/historique"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"github.com/moduleprospec/api-prospection/internal/zone"
	"gorm.io/gorm"
)

// TauxPourcentage retourne numerateur/denominateur en pourcentage, borné à
// [0, 100]. Un dénominateur nul donne 0, jamais une division par zéro.
func TauxPourcentage(numerateur, denominateur int) float64 {
	if denominateur <= 0 {
		return 0
	}
	taux := float64(numerateur) / float64(denominateur) * 100
	if taux > 100 {
		return 100
	}
	if taux < 0 {
		return 0
	}
	return taux
}

// CalculerKPIs cumule des lignes d'historique en compteurs de dashboard.
func CalculerKPIs(lignes []historique.HistoriqueProspection) KPIs {
	var k KPIs
	for _, l := range lignes {
		k.PortesVisitees += l.NbPortesVisitees
		k.ContratsSignes += l.NbContratsSignes
		k.RdvPris += l.NbRdvPris
		k.Refus += l.NbRefus
		k.Absents += l.NbAbsents
		k.Curieux += l.NbCurieux
	}
	k.TauxConclusion = TauxPourcentage(k.ContratsSignes, k.PortesVisitees)
	return k
}

// ClasserCommerciaux trie les commerciaux par contrats signés décroissants
// et attribue les rangs à partir de 1. Les historiques doivent être chargés.
func ClasserCommerciaux(commerciaux []commercial.Commercial) []EntreeClassement {
	classement := make([]EntreeClassement, 0, len(commerciaux))
	for _, c := range commerciaux {
		entree := EntreeClassement{
			CommercialID: c.ID,
			Nom:          c.Nom,
			Prenom:       c.Prenom,
		}
		for _, l := range c.Historiques {
			entree.ContratsSignes += l.NbContratsSignes
			entree.RdvPris += l.NbRdvPris
		}
		classement = append(classement, entree)
	}
	sort.SliceStable(classement, func(i, j int) bool {
		return classement[i].ContratsSignes > classement[j].ContratsSignes
	})
	for i := range classement {
		classement[i].Rang = i + 1
	}
	return classement
}

// PointsMensuels replie les lignes d'historique par mois calendaire,
// du plus ancien au plus récent.
func PointsMensuels(lignes []historique.HistoriqueProspection) []PointMensuel {
	parMois := map[string]*PointMensuel{}
	for _, l := range lignes {
		mois := fmt.Sprintf("%04d-%02d", l.DateProspection.Year(), int(l.DateProspection.Month()))
		p, ok := parMois[mois]
		if !ok {
			p = &PointMensuel{Mois: mois}
			parMois[mois] = p
		}
		p.Contrats += l.NbContratsSignes
		p.Rdv += l.NbRdvPris
	}

	points := make([]PointMensuel, 0, len(parMois))
	for _, p := range parMois {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Mois < points[j].Mois })
	return points
}

// Service assemble les modèles de lecture des tableaux de bord à partir des
// lignes d'historique et des statuts de portes.
type Service struct {
	DB          *gorm.DB
	Commerciaux commercial.Repository
	Equipes     equipe.Repository
	Zones       zone.Repository
	Historiques historique.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:          db,
		Commerciaux: commercial.NewRepository(),
		Equipes:     equipe.NewRepository(),
		Zones:       zone.NewRepository(),
		Historiques: historique.NewRepository(),
	}
}

// StatsGlobales calcule les KPIs, le leaderboard et la courbe mensuelle
// sur l'ensemble des commerciaux.
func (s *Service) StatsGlobales() (*StatsGlobalesDTO, error) {
	commerciaux, err := s.Commerciaux.ListerTous(s.DB)
	if err != nil {
		return nil, err
	}

	var toutes []historique.HistoriqueProspection
	for _, c := range commerciaux {
		toutes = append(toutes, c.Historiques...)
	}

	return &StatsGlobalesDTO{
		Kpis:              CalculerKPIs(toutes),
		Classement:        ClasserCommerciaux(commerciaux),
		HistoriqueMensuel: PointsMensuels(toutes),
	}, nil
}

// StatsCommercial calcule les KPIs d'un commercial.
func (s *Service) StatsCommercial(commercialID uint) (*StatsCommercialDTO, error) {
	c, err := s.Commerciaux.TrouverParID(s.DB, commercialID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("commercial %d introuvable", commercialID))
	}
	return &StatsCommercialDTO{
		CommercialID: c.ID,
		Nom:          c.Nom,
		Prenom:       c.Prenom,
		Kpis:         CalculerKPIs(c.Historiques),
	}, nil
}

// StatsEquipe calcule les KPIs cumulés d'une équipe et le classement
// interne de ses commerciaux.
func (s *Service) StatsEquipe(equipeID uint) (*StatsEquipeDTO, error) {
	e, err := s.Equipes.TrouverParID(s.DB, equipeID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("équipe %d introuvable", equipeID))
	}

	var toutes []historique.HistoriqueProspection
	for _, c := range e.Commerciaux {
		toutes = append(toutes, c.Historiques...)
	}

	return &StatsEquipeDTO{
		EquipeID:   e.ID,
		Nom:        e.Nom,
		Kpis:       CalculerKPIs(toutes),
		Classement: ClasserCommerciaux(e.Commerciaux),
	}, nil
}

// StatsZone calcule la couverture d'une zone à partir des statuts de
// portes de ses immeubles.
func (s *Service) StatsZone(zoneID uint) (*StatsZoneDTO, error) {
	z, err := s.Zones.TrouverParID(s.DB, zoneID)
	if err != nil {
		return nil, erreurs.NonTrouve(fmt.Sprintf("zone %d introuvable", zoneID))
	}

	dto := &StatsZoneDTO{
		ZoneID:      z.ID,
		Nom:         z.Nom,
		NbImmeubles: len(z.Immeubles),
	}
	for _, imm := range z.Immeubles {
		dto.NbPortesTotal += imm.NbPortesTotal
		for _, p := range imm.Portes {
			switch p.Statut {
			case porte.StatutNonVisite:
				// pas encore travaillée
			case porte.StatutContratSigne:
				dto.PortesVisitees++
				dto.ContratsSignes++
			case porte.StatutRdv:
				dto.PortesVisitees++
				dto.RdvPris++
			default:
				dto.PortesVisitees++
			}
		}
	}
	dto.TauxCouverture = TauxPourcentage(dto.PortesVisitees, dto.NbPortesTotal)
	dto.TauxConclusion = TauxPourcentage(dto.ContratsSignes, dto.PortesVisitees)
	return dto, nil
}
