package affectation

import (
	"testing"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/equipe"
	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/manager"
	"github.com/moduleprospec/api-prospection/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fauxZones struct {
	zones map[uint]zone.Zone
}

func (f *fauxZones) Creer(db *gorm.DB, z *zone.Zone) error {
	f.zones[z.ID] = *z
	return nil
}

func (f *fauxZones) Sauvegarder(db *gorm.DB, z *zone.Zone) error {
	f.zones[z.ID] = *z
	return nil
}

func (f *fauxZones) TrouverParID(db *gorm.DB, id uint) (*zone.Zone, error) {
	z, ok := f.zones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &z, nil
}

func (f *fauxZones) ListerTous(db *gorm.DB) ([]zone.Zone, error) { return nil, nil }

func (f *fauxZones) ListerParManager(db *gorm.DB, managerID uint) ([]zone.Zone, error) {
	var out []zone.Zone
	for _, z := range f.zones {
		if z.ManagerID != nil && *z.ManagerID == managerID {
			out = append(out, z)
		}
	}
	return out, nil
}

func (f *fauxZones) ListerParCommercial(db *gorm.DB, commercialID uint) ([]zone.Zone, error) {
	var out []zone.Zone
	for _, z := range f.zones {
		if z.CommercialID != nil && *z.CommercialID == commercialID {
			out = append(out, z)
		}
	}
	return out, nil
}

func (f *fauxZones) MettreAJour(db *gorm.DB, id uint, z *zone.Zone) error { return nil }

func (f *fauxZones) Supprimer(db *gorm.DB, id uint) error { return nil }

type fauxEquipes struct {
	equipes map[uint]equipe.Equipe
}

func (f *fauxEquipes) Creer(db *gorm.DB, e *equipe.Equipe) error { return nil }

func (f *fauxEquipes) TrouverParID(db *gorm.DB, id uint) (*equipe.Equipe, error) {
	e, ok := f.equipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (f *fauxEquipes) ListerTous(db *gorm.DB) ([]equipe.Equipe, error) { return nil, nil }

func (f *fauxEquipes) MettreAJour(db *gorm.DB, id uint, e *equipe.Equipe) error { return nil }

func (f *fauxEquipes) Supprimer(db *gorm.DB, id uint) error { return nil }

type fauxManagers struct {
	managers map[uint]manager.Manager
}

func (f *fauxManagers) Creer(db *gorm.DB, m *manager.Manager) error { return nil }

func (f *fauxManagers) TrouverParID(db *gorm.DB, id uint) (*manager.Manager, error) {
	m, ok := f.managers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fauxManagers) TrouverParEmail(db *gorm.DB, email string) (*manager.Manager, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fauxManagers) ListerTous(db *gorm.DB) ([]manager.Manager, error) { return nil, nil }

func (f *fauxManagers) MettreAJour(db *gorm.DB, id uint, m *manager.Manager) error { return nil }

func (f *fauxManagers) Supprimer(db *gorm.DB, id uint) error { return nil }

type fauxCommerciaux struct {
	commerciaux map[uint]commercial.Commercial
}

func (f *fauxCommerciaux) Creer(db *gorm.DB, c *commercial.Commercial) error { return nil }

func (f *fauxCommerciaux) Sauvegarder(db *gorm.DB, c *commercial.Commercial) error {
	f.commerciaux[c.ID] = *c
	return nil
}

func (f *fauxCommerciaux) TrouverParID(db *gorm.DB, id uint) (*commercial.Commercial, error) {
	c, ok := f.commerciaux[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fauxCommerciaux) TrouverParEmail(db *gorm.DB, email string) (*commercial.Commercial, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fauxCommerciaux) ListerTous(db *gorm.DB) ([]commercial.Commercial, error) { return nil, nil }

func (f *fauxCommerciaux) ListerParEquipe(db *gorm.DB, equipeID uint) ([]commercial.Commercial, error) {
	var out []commercial.Commercial
	for _, c := range f.commerciaux {
		if c.EquipeID == equipeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fauxCommerciaux) MettreAJour(db *gorm.DB, id uint, c *commercial.Commercial) error {
	return nil
}

func (f *fauxCommerciaux) Supprimer(db *gorm.DB, id uint) error { return nil }

func ptr[T any](v T) *T { return &v }

func newServiceTest() (*Service, *fauxZones, *fauxCommerciaux) {
	zones := &fauxZones{zones: map[uint]zone.Zone{
		1: {
			Model:           gorm.Model{ID: 1},
			Nom:             "Centre-ville",
			TypeAssignation: zone.AssignationEquipe,
			EquipeID:        ptr(uint(5)),
		},
	}}
	commerciaux := &fauxCommerciaux{commerciaux: map[uint]commercial.Commercial{
		10: {Model: gorm.Model{ID: 10}, EquipeID: 5},
		11: {Model: gorm.Model{ID: 11}, EquipeID: 5},
	}}
	s := &Service{
		Zones:       zones,
		Equipes:     &fauxEquipes{equipes: map[uint]equipe.Equipe{5: {Model: gorm.Model{ID: 5}}}},
		Managers:    &fauxManagers{managers: map[uint]manager.Manager{7: {Model: gorm.Model{ID: 7}}}},
		Commerciaux: commerciaux,
	}
	return s, zones, commerciaux
}

func TestAssignerZoneExclusivite(t *testing.T) {
	s, zones, _ := newServiceTest()

	// la réassignation à un commercial efface la référence d'équipe
	z, err := s.AssignerZone(1, 10, zone.AssignationCommercial)
	require.NoError(t, err)
	assert.Equal(t, zone.AssignationCommercial, z.TypeAssignation)
	require.NotNil(t, z.CommercialID)
	assert.Equal(t, uint(10), *z.CommercialID)
	assert.Nil(t, z.EquipeID)
	assert.Nil(t, z.ManagerID)

	sauvee := zones.zones[1]
	assert.Nil(t, sauvee.EquipeID)

	// puis à un manager
	z, err = s.AssignerZone(1, 7, zone.AssignationManager)
	require.NoError(t, err)
	require.NotNil(t, z.ManagerID)
	assert.Nil(t, z.CommercialID)
}

func TestAssignerZoneIntrouvable(t *testing.T) {
	s, _, _ := newServiceTest()

	var en *erreurs.ErreurNonTrouve
	_, err := s.AssignerZone(99, 10, zone.AssignationCommercial)
	require.ErrorAs(t, err, &en)

	// assigné inexistant
	_, err = s.AssignerZone(1, 99, zone.AssignationCommercial)
	require.ErrorAs(t, err, &en)
}

func TestAssignerZoneTypeInconnu(t *testing.T) {
	s, _, _ := newServiceTest()

	var ev *erreurs.ErreurValidation
	_, err := s.AssignerZone(1, 10, "QUARTIER")
	require.ErrorAs(t, err, &ev)
}

func TestDefinirObjectifMensuel(t *testing.T) {
	s, _, commerciaux := newServiceTest()

	c, err := s.DefinirObjectifMensuel(10, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, c.ObjectifMensuel)
	assert.Equal(t, 8, commerciaux.commerciaux[10].ObjectifMensuel)

	var ev *erreurs.ErreurValidation
	_, err = s.DefinirObjectifMensuel(10, -1)
	require.ErrorAs(t, err, &ev)

	var en *erreurs.ErreurNonTrouve
	_, err = s.DefinirObjectifMensuel(99, 5)
	require.ErrorAs(t, err, &en)
}

func TestCommerciauxDansZone(t *testing.T) {
	s, zones, _ := newServiceTest()

	// zone assignée à l'équipe 5: ses deux commerciaux
	cs, err := s.CommerciauxDansZone(1)
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	// zone assignée en direct à un commercial
	zones.zones[2] = zone.Zone{
		Model:           gorm.Model{ID: 2},
		TypeAssignation: zone.AssignationCommercial,
		CommercialID:    ptr(uint(10)),
	}
	cs, err = s.CommerciauxDansZone(2)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, uint(10), cs[0].ID)

	// zone assignée à un manager: personne en direct
	zones.zones[3] = zone.Zone{
		Model:           gorm.Model{ID: 3},
		TypeAssignation: zone.AssignationManager,
		ManagerID:       ptr(uint(7)),
	}
	cs, err = s.CommerciauxDansZone(3)
	require.NoError(t, err)
	assert.Empty(t, cs)
}
