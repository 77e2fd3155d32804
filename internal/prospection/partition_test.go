package prospection

import (
	"fmt"
	"testing"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepartirPortesSolo(t *testing.T) {
	portes, err := RepartirPortes(7, 3, 4, []uint{42})
	require.NoError(t, err)
	require.Len(t, portes, 12)

	for i, p := range portes {
		assert.Equal(t, uint(7), p.ImmeubleID)
		assert.Equal(t, porte.StatutNonVisite, p.Statut)
		assert.Equal(t, 0, p.Passage)
		require.NotNil(t, p.AssigneeID)
		assert.Equal(t, uint(42), *p.AssigneeID)
		assert.Equal(t, fmt.Sprintf("Porte %d", i+1), p.NumeroPorte)
	}

	// étage 1..3, 4 portes par étage
	assert.Equal(t, 1, portes[0].Etage)
	assert.Equal(t, 1, portes[3].Etage)
	assert.Equal(t, 2, portes[4].Etage)
	assert.Equal(t, 3, portes[11].Etage)
}

func TestRepartirPortesDuoParEtage(t *testing.T) {
	portes, err := RepartirPortes(1, 4, 3, []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, portes, 12)

	// étages 1 et 2 pour l'hôte, 3 et 4 pour le partenaire
	for _, p := range portes {
		require.NotNil(t, p.AssigneeID)
		if p.Etage <= 2 {
			assert.Equal(t, uint(1), *p.AssigneeID, "étage %d", p.Etage)
		} else {
			assert.Equal(t, uint(2), *p.AssigneeID, "étage %d", p.Etage)
		}
	}
}

func TestRepartirPortesDuoEtagesImpairs(t *testing.T) {
	// 5 étages: l'hôte prend la moitié la plus grande, étages 1 à 3
	portes, err := RepartirPortes(1, 5, 2, []uint{10, 20})
	require.NoError(t, err)

	var hote, partenaire int
	for _, p := range portes {
		switch *p.AssigneeID {
		case 10:
			hote++
			assert.LessOrEqual(t, p.Etage, 3)
		case 20:
			partenaire++
			assert.GreaterOrEqual(t, p.Etage, 4)
		}
	}
	assert.Equal(t, 6, hote)
	assert.Equal(t, 4, partenaire)
}

func TestRepartirPortesDuoEtageUnique(t *testing.T) {
	// un seul étage: la coupe se fait par numéro de porte
	portes, err := RepartirPortes(1, 1, 5, []uint{10, 20})
	require.NoError(t, err)
	require.Len(t, portes, 5)

	for i, p := range portes {
		if i < 3 {
			assert.Equal(t, uint(10), *p.AssigneeID)
		} else {
			assert.Equal(t, uint(20), *p.AssigneeID)
		}
	}
}

func TestRepartirPortesValidation(t *testing.T) {
	_, err := RepartirPortes(1, 3, 4, nil)
	var ev *erreurs.ErreurValidation
	require.ErrorAs(t, err, &ev)

	_, err = RepartirPortes(1, 0, 4, []uint{1})
	require.ErrorAs(t, err, &ev)

	_, err = RepartirPortes(1, 3, 0, []uint{1})
	require.ErrorAs(t, err, &ev)
}
