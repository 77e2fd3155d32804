package immeuble

import "time"

// CreerImmeubleRequest est le payload de création/mise à jour d'un immeuble.
type CreerImmeubleRequest struct {
	Adresse            string     `json:"adresse"`
	Ville              string     `json:"ville"`
	CodePostal         string     `json:"codePostal"`
	Status             string     `json:"status"`
	NbEtages           int        `json:"nbEtages"`
	NbPortesParEtage   int        `json:"nbPortesParEtage"`
	ProspectingMode    string     `json:"prospectingMode"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	HasElevator        bool       `json:"hasElevator"`
	Digicode           string     `json:"digicode"`
	DateDerniereVisite *time.Time `json:"dateDerniereVisite"`
	ZoneID             *uint      `json:"zoneId"`
}
