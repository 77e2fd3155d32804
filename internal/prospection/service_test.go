package prospection

import (
	"testing"
	"time"

	"github.com/moduleprospec/api-prospection/internal/commercial"
	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/immeuble"
	"github.com/moduleprospec/api-prospection/internal/porte"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fakes en mémoire pour exercer le service sans base.

type fauxDemandes struct {
	demandes   map[uint]ProspectionRequest
	prochainID uint
}

func newFauxDemandes() *fauxDemandes {
	return &fauxDemandes{demandes: map[uint]ProspectionRequest{}}
}

func (f *fauxDemandes) Creer(db *gorm.DB, d *ProspectionRequest) error {
	f.prochainID++
	d.ID = f.prochainID
	f.demandes[d.ID] = *d
	return nil
}

func (f *fauxDemandes) Sauvegarder(db *gorm.DB, d *ProspectionRequest) error {
	f.demandes[d.ID] = *d
	return nil
}

func (f *fauxDemandes) TrouverParID(db *gorm.DB, id uint) (*ProspectionRequest, error) {
	d, ok := f.demandes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (f *fauxDemandes) ListerTous(db *gorm.DB) ([]ProspectionRequest, error) {
	var out []ProspectionRequest
	for _, d := range f.demandes {
		out = append(out, d)
	}
	return out, nil
}

func (f *fauxDemandes) ListerEnAttenteParPartenaire(db *gorm.DB, partnerID uint) ([]ProspectionRequest, error) {
	var out []ProspectionRequest
	for _, d := range f.demandes {
		if d.PartnerID == partnerID && d.Statut == StatutEnAttente {
			out = append(out, d)
		}
	}
	return out, nil
}

type fauxImmeubles struct {
	immeubles    map[uint]immeuble.Immeuble
	prospecteurs map[uint][]uint
}

func newFauxImmeubles() *fauxImmeubles {
	return &fauxImmeubles{
		immeubles:    map[uint]immeuble.Immeuble{},
		prospecteurs: map[uint][]uint{},
	}
}

func (f *fauxImmeubles) Creer(db *gorm.DB, i *immeuble.Immeuble) error {
	f.immeubles[i.ID] = *i
	return nil
}

func (f *fauxImmeubles) Sauvegarder(db *gorm.DB, i *immeuble.Immeuble) error {
	f.immeubles[i.ID] = *i
	return nil
}

func (f *fauxImmeubles) TrouverParID(db *gorm.DB, id uint) (*immeuble.Immeuble, error) {
	i, ok := f.immeubles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &i, nil
}

func (f *fauxImmeubles) ListerTous(db *gorm.DB) ([]immeuble.Immeuble, error) { return nil, nil }

func (f *fauxImmeubles) ListerParZone(db *gorm.DB, zoneID uint) ([]immeuble.Immeuble, error) {
	return nil, nil
}

func (f *fauxImmeubles) MettreAJour(db *gorm.DB, id uint, req *immeuble.CreerImmeubleRequest) error {
	return nil
}

func (f *fauxImmeubles) Supprimer(db *gorm.DB, id uint) error {
	delete(f.immeubles, id)
	return nil
}

func (f *fauxImmeubles) AttacherProspecteurs(db *gorm.DB, immeubleID uint, commerciaux []commercial.Commercial) error {
	for _, c := range commerciaux {
		f.prospecteurs[immeubleID] = append(f.prospecteurs[immeubleID], c.ID)
	}
	return nil
}

type fauxCommerciaux struct {
	commerciaux map[uint]commercial.Commercial
}

func newFauxCommerciaux(cs ...commercial.Commercial) *fauxCommerciaux {
	f := &fauxCommerciaux{commerciaux: map[uint]commercial.Commercial{}}
	for _, c := range cs {
		f.commerciaux[c.ID] = c
	}
	return f
}

func (f *fauxCommerciaux) Creer(db *gorm.DB, c *commercial.Commercial) error {
	f.commerciaux[c.ID] = *c
	return nil
}

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
	for _, c := range f.commerciaux {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fauxCommerciaux) ListerTous(db *gorm.DB) ([]commercial.Commercial, error) { return nil, nil }

func (f *fauxCommerciaux) ListerParEquipe(db *gorm.DB, equipeID uint) ([]commercial.Commercial, error) {
	return nil, nil
}

func (f *fauxCommerciaux) MettreAJour(db *gorm.DB, id uint, c *commercial.Commercial) error {
	return nil
}

func (f *fauxCommerciaux) Supprimer(db *gorm.DB, id uint) error { return nil }

type fauxPortes struct {
	portes []porte.Porte
}

func (f *fauxPortes) Creer(db *gorm.DB, p *porte.Porte) error {
	f.portes = append(f.portes, *p)
	return nil
}

func (f *fauxPortes) CreerEnMasse(db *gorm.DB, portes []porte.Porte) error {
	f.portes = append(f.portes, portes...)
	return nil
}

func (f *fauxPortes) Sauvegarder(db *gorm.DB, p *porte.Porte) error { return nil }

func (f *fauxPortes) TrouverParID(db *gorm.DB, id uint) (*porte.Porte, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fauxPortes) ListerTous(db *gorm.DB) ([]porte.Porte, error) { return f.portes, nil }

func (f *fauxPortes) ListerParImmeuble(db *gorm.DB, immeubleID uint) ([]porte.Porte, error) {
	var out []porte.Porte
	for _, p := range f.portes {
		if p.ImmeubleID == immeubleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fauxPortes) CompterParImmeuble(db *gorm.DB, immeubleID uint) (int64, error) {
	var n int64
	for _, p := range f.portes {
		if p.ImmeubleID == immeubleID {
			n++
		}
	}
	return n, nil
}

func (f *fauxPortes) Supprimer(db *gorm.DB, id uint) error { return nil }

type fauxNotifier struct {
	envois chan string
}

func (f *fauxNotifier) Envoyer(destinataire, sujet, corps string) {
	f.envois <- destinataire
}

func newServiceTest() (*Service, *fauxDemandes, *fauxImmeubles, *fauxPortes, *fauxNotifier) {
	demandes := newFauxDemandes()
	immeubles := newFauxImmeubles()
	immeubles.immeubles[1] = immeuble.Immeuble{
		Model:            gorm.Model{ID: 1},
		Adresse:          "12 rue de la Paix",
		Status:           immeuble.StatusNonCommence,
		NbEtages:         3,
		NbPortesParEtage: 4,
	}
	commerciaux := newFauxCommerciaux(
		commercial.Commercial{Model: gorm.Model{ID: 10}, Email: "alice@exemple.fr", EquipeID: 1},
		commercial.Commercial{Model: gorm.Model{ID: 20}, Email: "bruno@exemple.fr", EquipeID: 1},
		commercial.Commercial{Model: gorm.Model{ID: 30}, Email: "chloe@exemple.fr", EquipeID: 2},
	)
	portes := &fauxPortes{}
	notifier := &fauxNotifier{envois: make(chan string, 1)}

	s := &Service{
		Tx:          func(fn func(tx *gorm.DB) error) error { return fn(nil) },
		Demandes:    demandes,
		Immeubles:   immeubles,
		Commerciaux: commerciaux,
		Portes:      portes,
		Notifier:    notifier,
		Logger:      zap.NewNop(),
	}
	return s, demandes, immeubles, portes, notifier
}

func TestDemarrerProspectionSolo(t *testing.T) {
	s, _, immeubles, portes, _ := newServiceTest()

	res, err := s.DemarrerProspection(DemarrerProspectionRequest{
		CommercialID: 10,
		ImmeubleID:   1,
		Mode:         immeuble.ModeSolo,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)

	assert.Len(t, portes.portes, 12)
	for _, p := range portes.portes {
		assert.Equal(t, porte.StatutNonVisite, p.Statut)
		require.NotNil(t, p.AssigneeID)
		assert.Equal(t, uint(10), *p.AssigneeID)
	}

	imm := immeubles.immeubles[1]
	assert.Equal(t, immeuble.StatusEnCours, imm.Status)
	assert.Equal(t, 12, imm.NbPortesTotal)
	assert.Equal(t, []uint{10}, immeubles.prospecteurs[1])
}

func TestDemarrerProspectionSoloDejaGenere(t *testing.T) {
	s, _, _, portes, _ := newServiceTest()
	portes.portes = append(portes.portes, porte.Porte{ImmeubleID: 1})

	_, err := s.DemarrerProspection(DemarrerProspectionRequest{
		CommercialID: 10,
		ImmeubleID:   1,
		Mode:         immeuble.ModeSolo,
	})
	var ev *erreurs.ErreurValidation
	require.ErrorAs(t, err, &ev)
}

func TestDemarrerProspectionDuoSansPartenaire(t *testing.T) {
	s, _, _, _, _ := newServiceTest()

	_, err := s.DemarrerProspection(DemarrerProspectionRequest{
		CommercialID: 10,
		ImmeubleID:   1,
		Mode:         immeuble.ModeDuo,
	})
	var ev *erreurs.ErreurValidation
	require.ErrorAs(t, err, &ev)
}

func TestDemarrerProspectionDuoPartenaireHorsEquipe(t *testing.T) {
	s, demandes, _, _, _ := newServiceTest()

	partnerID := uint(30) // équipe 2, le demandeur est en équipe 1
	_, err := s.DemarrerProspection(DemarrerProspectionRequest{
		CommercialID: 10,
		ImmeubleID:   1,
		Mode:         immeuble.ModeDuo,
		PartnerID:    &partnerID,
	})
	var ev *erreurs.ErreurValidation
	require.ErrorAs(t, err, &ev)
	assert.Empty(t, demandes.demandes)
}

func TestDemarrerProspectionDuoCreeInvitation(t *testing.T) {
	s, demandes, _, portes, notifier := newServiceTest()

	partnerID := uint(20)
	res, err := s.DemarrerProspection(DemarrerProspectionRequest{
		CommercialID: 10,
		ImmeubleID:   1,
		Mode:         immeuble.ModeDuo,
		PartnerID:    &partnerID,
	})
	require.NoError(t, err)
	require.NotNil(t, res.RequestID)

	demande := demandes.demandes[*res.RequestID]
	assert.Equal(t, StatutEnAttente, demande.Statut)
	assert.Equal(t, uint(10), demande.RequesterID)
	assert.Equal(t, uint(20), demande.PartnerID)

	// aucune porte avant l'acceptation
	assert.Empty(t, portes.portes)

	select {
	case dest := <-notifier.envois:
		assert.Equal(t, "bruno@exemple.fr", dest)
	case <-time.After(time.Second):
		t.Fatal("notification jamais envoyée")
	}
}

func TestTraiterDemandeAccepte(t *testing.T) {
	s, demandes, immeubles, portes, _ := newServiceTest()
	demandes.demandes[1] = ProspectionRequest{
		Model:       gorm.Model{ID: 1},
		ImmeubleID:  1,
		RequesterID: 10,
		PartnerID:   20,
		Statut:      StatutEnAttente,
	}
	demandes.prochainID = 1

	res, err := s.TraiterDemande(1, true)
	require.NoError(t, err)
	require.NotNil(t, res.ImmeubleID)
	assert.Equal(t, uint(1), *res.ImmeubleID)

	assert.Equal(t, StatutAccepte, demandes.demandes[1].Statut)
	assert.Len(t, portes.portes, 12)

	// coupe par étage: 1..2 pour le demandeur, 3 pour le partenaire
	for _, p := range portes.portes {
		require.NotNil(t, p.AssigneeID)
		if p.Etage <= 2 {
			assert.Equal(t, uint(10), *p.AssigneeID)
		} else {
			assert.Equal(t, uint(20), *p.AssigneeID)
		}
	}
	assert.ElementsMatch(t, []uint{10, 20}, immeubles.prospecteurs[1])
}

func TestTraiterDemandeRefuse(t *testing.T) {
	s, demandes, _, portes, _ := newServiceTest()
	demandes.demandes[1] = ProspectionRequest{
		Model:       gorm.Model{ID: 1},
		ImmeubleID:  1,
		RequesterID: 10,
		PartnerID:   20,
		Statut:      StatutEnAttente,
	}
	demandes.prochainID = 1

	res, err := s.TraiterDemande(1, false)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Message)

	assert.Equal(t, StatutRefuse, demandes.demandes[1].Statut)
	assert.Empty(t, portes.portes)
}

func TestTraiterDemandeDejaTraitee(t *testing.T) {
	s, demandes, _, _, _ := newServiceTest()
	demandes.demandes[1] = ProspectionRequest{
		Model:  gorm.Model{ID: 1},
		Statut: StatutRefuse,
	}

	_, err := s.TraiterDemande(1, true)
	var en *erreurs.ErreurNonTrouve
	require.ErrorAs(t, err, &en)

	_, err = s.TraiterDemande(99, true)
	require.ErrorAs(t, err, &en)
}

func TestTraiterDemandeImmeubleMalConfigure(t *testing.T) {
	s, demandes, immeubles, portes, _ := newServiceTest()
	immeubles.immeubles[2] = immeuble.Immeuble{
		Model:  gorm.Model{ID: 2},
		Status: immeuble.StatusNonConfigure,
	}
	demandes.demandes[1] = ProspectionRequest{
		Model:       gorm.Model{ID: 1},
		ImmeubleID:  2,
		RequesterID: 10,
		PartnerID:   20,
		Statut:      StatutEnAttente,
	}

	_, err := s.TraiterDemande(1, true)
	var ev *erreurs.ErreurValidation
	require.ErrorAs(t, err, &ev)
	assert.Empty(t, portes.portes)
}

func TestDemandesEnAttentePour(t *testing.T) {
	s, demandes, _, _, _ := newServiceTest()
	demandes.demandes[1] = ProspectionRequest{
		Model:       gorm.Model{ID: 1},
		ImmeubleID:  1,
		RequesterID: 10,
		PartnerID:   20,
		Statut:      StatutEnAttente,
	}
	demandes.demandes[2] = ProspectionRequest{
		Model:       gorm.Model{ID: 2},
		ImmeubleID:  1,
		RequesterID: 10,
		PartnerID:   20,
		Statut:      StatutRefuse,
	}

	dtos, err := s.DemandesEnAttentePour(20)
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, uint(1), dtos[0].ID)
	assert.Equal(t, "12 rue de la Paix", dtos[0].Adresse)
}

func TestStatutDemande(t *testing.T) {
	s, demandes, _, _, _ := newServiceTest()
	demandes.demandes[1] = ProspectionRequest{
		Model:  gorm.Model{ID: 1},
		Statut: StatutAccepte,
	}

	statut, err := s.StatutDemande(1)
	require.NoError(t, err)
	assert.Equal(t, StatutAccepte, statut)

	_, err = s.StatutDemande(99)
	var en *erreurs.ErreurNonTrouve
	require.ErrorAs(t, err, &en)
}
