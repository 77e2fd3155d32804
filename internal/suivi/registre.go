package suivi

import (
	"sync"
	"time"
)

// PositionGPS est la dernière position connue d'un commercial sur le terrain.
type PositionGPS struct {
	CommercialID uint      `json:"commercialId"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Vitesse      float64   `json:"vitesse,omitempty"`
	Cap          float64   `json:"cap,omitempty"`
	Precision    float64   `json:"precision,omitempty"`
	Horodatage   time.Time `json:"horodatage"`
}

// Registre garde en mémoire les positions live. Il est créé au démarrage du
// serveur et purgé à chaque déconnexion — pas d'état mutable au niveau du
// package.
type Registre struct {
	mu        sync.RWMutex
	positions map[uint]PositionGPS
}

func NewRegistre() *Registre {
	return &Registre{positions: make(map[uint]PositionGPS)}
}

func (r *Registre) MettreAJour(p PositionGPS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions[p.CommercialID] = p
}

func (r *Registre) Position(commercialID uint) (PositionGPS, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[commercialID]
	return p, ok
}

// Toutes retourne un instantané des positions courantes.
func (r *Registre) Toutes() []PositionGPS {
	r.mu.RLock()
	defer r.mu.RUnlock()
	positions := make([]PositionGPS, 0, len(r.positions))
	for _, p := range r.positions {
		positions = append(positions, p)
	}
	return positions
}

func (r *Registre) Supprimer(commercialID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.positions, commercialID)
}

func (r *Registre) Taille() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.positions)
}
