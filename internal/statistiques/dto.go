package statistiques

// KPIs sont les compteurs agrégés présentés sur les tableaux de bord.
type KPIs struct {
	PortesVisitees int     `json:"portesVisitees"`
	ContratsSignes int     `json:"contratsSignes"`
	RdvPris        int     `json:"rdvPris"`
	Refus          int     `json:"refus"`
	Absents        int     `json:"absents"`
	Curieux        int     `json:"curieux"`
	TauxConclusion float64 `json:"tauxConclusion"`
}

// EntreeClassement est une ligne du leaderboard, classée par contrats signés.
type EntreeClassement struct {
	Rang           int    `json:"rang"`
	CommercialID   uint   `json:"commercialId"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	ContratsSignes int    `json:"contratsSignes"`
	RdvPris        int    `json:"rdvPris"`
}

// PointMensuel est un point de la courbe d'activité mensuelle.
type PointMensuel struct {
	Mois     string `json:"mois"`
	Contrats int    `json:"contrats"`
	Rdv      int    `json:"rdv"`
}

type StatsGlobalesDTO struct {
	Kpis              KPIs               `json:"kpis"`
	Classement        []EntreeClassement `json:"classement"`
	HistoriqueMensuel []PointMensuel     `json:"historiqueMensuel"`
}

type StatsCommercialDTO struct {
	CommercialID uint   `json:"commercialId"`
	Nom          string `json:"nom"`
	Prenom       string `json:"prenom"`
	Kpis         KPIs   `json:"kpis"`
}

type StatsEquipeDTO struct {
	EquipeID   uint               `json:"equipeId"`
	Nom        string             `json:"nom"`
	Kpis       KPIs               `json:"kpis"`
	Classement []EntreeClassement `json:"classement"`
}

type StatsZoneDTO struct {
	ZoneID         uint    `json:"zoneId"`
	Nom            string  `json:"nom"`
	NbImmeubles    int     `json:"nbImmeubles"`
	NbPortesTotal  int     `json:"nbPortesTotal"`
	PortesVisitees int     `json:"portesVisitees"`
	ContratsSignes int     `json:"contratsSignes"`
	RdvPris        int     `json:"rdvPris"`
	TauxCouverture float64 `json:"tauxCouverture"`
	TauxConclusion float64 `json:"tauxConclusion"`
}
