package historique

import (
	"time"

	"gorm.io/gorm"
)

// HistoriqueProspection agrège, par commercial, immeuble et journée, le
// résultat des passages de portes. Les compteurs ne font que croître;
// une ligne existe à partir du premier changement de statut du jour.
type HistoriqueProspection struct {
	gorm.Model

	CommercialID    uint      `gorm:"not null;index;uniqueIndex:idx_histo_commercial_immeuble_jour" json:"commercialId"`
	ImmeubleID      uint      `gorm:"not null;index;uniqueIndex:idx_histo_commercial_immeuble_jour" json:"immeubleId"`
	DateProspection time.Time `gorm:"not null;uniqueIndex:idx_histo_commercial_immeuble_jour" json:"dateProspection"`

	NbPortesVisitees int `json:"nbPortesVisitees"`
	NbContratsSignes int `json:"nbContratsSignes"`
	NbRdvPris        int `json:"nbRdvPris"`
	NbRefus          int `json:"nbRefus"`
	NbAbsents        int `json:"nbAbsents"`
	NbCurieux        int `json:"nbCurieux"`

	Commentaire string `json:"commentaire"`
}

// DebutJournee ramène un instant au début de sa journée UTC. Toute
// l'agrégation journalière est calée sur UTC, pas sur l'heure locale.
func DebutJournee(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
