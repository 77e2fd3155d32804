package statistiques

import (
	"testing"
	"time"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/historique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTauxPourcentage(t *testing.T) {
	assert.Equal(t, 0.0, TauxPourcentage(5, 0))
	assert.Equal(t, 0.0, TauxPourcentage(5, -1))
	assert.Equal(t, 50.0, TauxPourcentage(1, 2))
	assert.Equal(t, 100.0, TauxPourcentage(3, 3))
	// jamais au-dessus de 100 ni sous 0
	assert.Equal(t, 100.0, TauxPourcentage(7, 3))
	assert.Equal(t, 0.0, TauxPourcentage(-1, 3))
}

func TestCalculerKPIs(t *testing.T) {
	lignes := []historique.HistoriqueProspection{
		{NbPortesVisitees: 10, NbContratsSignes: 2, NbRdvPris: 1, NbRefus: 4, NbAbsents: 2, NbCurieux: 1},
		{NbPortesVisitees: 5, NbContratsSignes: 1, NbRdvPris: 2, NbRefus: 1, NbAbsents: 1},
	}

	k := CalculerKPIs(lignes)
	assert.Equal(t, 15, k.PortesVisitees)
	assert.Equal(t, 3, k.ContratsSignes)
	assert.Equal(t, 3, k.RdvPris)
	assert.Equal(t, 5, k.Refus)
	assert.Equal(t, 3, k.Absents)
	assert.Equal(t, 1, k.Curieux)
	assert.Equal(t, 20.0, k.TauxConclusion)
}

func TestCalculerKPIsSansLignes(t *testing.T) {
	k := CalculerKPIs(nil)
	assert.Equal(t, KPIs{}, k)
}

func TestClasserCommerciaux(t *testing.T) {
	commerciaux := []commercial.Commercial{
		{
			Model: gorm.Model{ID: 1}, Nom: "Martin", Prenom: "Alice",
			Historiques: []historique.HistoriqueProspection{{NbContratsSignes: 2, NbRdvPris: 1}},
		},
		{
			Model: gorm.Model{ID: 2}, Nom: "Durand", Prenom: "Bruno",
			Historiques: []historique.HistoriqueProspection{{NbContratsSignes: 5}, {NbContratsSignes: 1}},
		},
		{
			Model: gorm.Model{ID: 3}, Nom: "Petit", Prenom: "Chloé",
		},
	}

	classement := ClasserCommerciaux(commerciaux)
	require.Len(t, classement, 3)

	assert.Equal(t, uint(2), classement[0].CommercialID)
	assert.Equal(t, 1, classement[0].Rang)
	assert.Equal(t, 6, classement[0].ContratsSignes)

	assert.Equal(t, uint(1), classement[1].CommercialID)
	assert.Equal(t, 2, classement[1].Rang)

	assert.Equal(t, uint(3), classement[2].CommercialID)
	assert.Equal(t, 3, classement[2].Rang)
	assert.Equal(t, 0, classement[2].ContratsSignes)
}

func TestPointsMensuels(t *testing.T) {
	jour := func(annee int, mois time.Month, j int) time.Time {
		return time.Date(annee, mois, j, 0, 0, 0, 0, time.UTC)
	}
	lignes := []historique.HistoriqueProspection{
		{DateProspection: jour(2026, time.March, 3), NbContratsSignes: 1, NbRdvPris: 2},
		{DateProspection: jour(2026, time.January, 15), NbContratsSignes: 2},
		{DateProspection: jour(2026, time.March, 20), NbContratsSignes: 1},
	}

	points := PointsMensuels(lignes)
	require.Len(t, points, 2)

	assert.Equal(t, "2026-01", points[0].Mois)
	assert.Equal(t, 2, points[0].Contrats)

	assert.Equal(t, "2026-03", points[1].Mois)
	assert.Equal(t, 2, points[1].Contrats)
	assert.Equal(t, 2, points[1].Rdv)
}
