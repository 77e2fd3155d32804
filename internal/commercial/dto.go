package commercial

import "github.com/moduleprospec/api-prospection/internal/historique"

// ResumeCommercialDTO condense l'activité d'un commercial pour les écrans
// de détail: cumuls bruts de ses lignes d'historique.
type ResumeCommercialDTO struct {
	ID              uint   `json:"id"`
	Nom             string `json:"nom"`
	Prenom          string `json:"prenom"`
	Email           string `json:"email"`
	Telephone       string `json:"telephone"`
	EquipeID        uint   `json:"equipeId"`
	ObjectifMensuel int    `json:"objectifMensuel"`
	PortesVisitees  int    `json:"portesVisitees"`
	ContratsSignes  int    `json:"contratsSignes"`
	RdvPris         int    `json:"rdvPris"`
	Refus           int    `json:"refus"`
	Absents         int    `json:"absents"`
	Curieux         int    `json:"curieux"`
}

// ConstruireResumeCommercialDTO cumule les lignes d'historique du commercial.
func ConstruireResumeCommercialDTO(c Commercial, lignes []historique.HistoriqueProspection) ResumeCommercialDTO {
	dto := ResumeCommercialDTO{
		ID:              c.ID,
		Nom:             c.Nom,
		Prenom:          c.Prenom,
		Email:           c.Email,
		Telephone:       c.Telephone,
		EquipeID:        c.EquipeID,
		ObjectifMensuel: c.ObjectifMensuel,
	}
	for _, l := range lignes {
		dto.PortesVisitees += l.NbPortesVisitees
		dto.ContratsSignes += l.NbContratsSignes
		dto.RdvPris += l.NbRdvPris
		dto.Refus += l.NbRefus
		dto.Absents += l.NbAbsents
		dto.Curieux += l.NbCurieux
	}
	return dto
}
