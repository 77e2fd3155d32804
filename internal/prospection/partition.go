package prospection

import (
	"fmt"

	"github.com/moduleprospec/api-prospection/internal/erreurs"
	"github.com/moduleprospec/api-prospection/internal/porte"
)

// RepartirPortes génère les nbEtages*nbPortesParEtage portes d'un immeuble
// et les répartit entre un (solo) ou deux (duo) commerciaux.
//
// En duo sur plusieurs étages, la coupe se fait par étage: étages
// 1..ceil(F/2) pour l'hôte, le reste pour le partenaire — l'hôte prend la
// moitié la plus grande quand F est impair. Sur un seul étage, la coupe se
// fait par numéro de porte avec la même règle.
func RepartirPortes(immeubleID uint, nbEtages, nbPortesParEtage int, commerciaux []uint) ([]porte.Porte, error) {
	if len(commerciaux) == 0 {
		return nil, erreurs.Validation("aucun commercial fourni pour l'assignation des portes")
	}
	if nbEtages < 1 || nbPortesParEtage < 1 {
		return nil, erreurs.Validation("l'immeuble n'a pas de configuration étages/portes valide")
	}

	hote := commerciaux[0]
	var partenaire *uint
	if len(commerciaux) > 1 {
		partenaire = &commerciaux[1]
	}

	portes := make([]porte.Porte, 0, nbEtages*nbPortesParEtage)
	for etage := 1; etage <= nbEtages; etage++ {
		for num := 1; num <= nbPortesParEtage; num++ {
			assignee := hote
			if partenaire != nil {
				if nbEtages > 1 {
					// coupe par étage
					if etage > (nbEtages+1)/2 {
						assignee = *partenaire
					}
				} else {
					// un seul étage: coupe par numéro de porte
					if num > (nbPortesParEtage+1)/2 {
						assignee = *partenaire
					}
				}
			}
			assigneeID := assignee
			portes = append(portes, porte.Porte{
				ImmeubleID:  immeubleID,
				Etage:       etage,
				NumeroPorte: fmt.Sprintf("Porte %d", (etage-1)*nbPortesParEtage+num),
				Statut:      porte.StatutNonVisite,
				Passage:     0,
				AssigneeID:  &assigneeID,
			})
		}
	}
	return portes, nil
}
