package suivi

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // à restreindre en production
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// message est l'enveloppe échangée sur la socket de suivi.
// Entrants: "position" (commercial) et "observe" (dashboard admin).
// Sortants: "snapshot", "position", "offline".
type message struct {
	Type         string        `json:"type"`
	CommercialID uint          `json:"commercialId,omitempty"`
	Latitude     float64       `json:"latitude,omitempty"`
	Longitude    float64       `json:"longitude,omitempty"`
	Vitesse      float64       `json:"vitesse,omitempty"`
	Cap          float64       `json:"cap,omitempty"`
	Precision    float64       `json:"precision,omitempty"`
	Horodatage   time.Time     `json:"horodatage,omitempty"`
	Positions    []PositionGPS `json:"positions,omitempty"`
}

// Hub relie les commerciaux qui émettent leur position GPS aux dashboards
// qui les observent.
type Hub struct {
	Registre *Registre
	Logger   *zap.Logger

	mu           sync.Mutex
	observateurs map[string]*websocket.Conn
}

func NewHub(registre *Registre, logger *zap.Logger) *Hub {
	return &Hub{
		Registre:     registre,
		Logger:       logger,
		observateurs: make(map[string]*websocket.Conn),
	}
}

// ServirWS monte la connexion en WebSocket et boucle sur les messages
// jusqu'à la déconnexion.
func (h *Hub) ServirWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Error("échec de l'upgrade websocket", zap.Error(err))
		return
	}

	sessionID := uuid.NewString()
	h.Logger.Info("client de suivi connecté", zap.String("sessionId", sessionID))

	// commercial associé à cette connexion, 0 tant qu'aucune position reçue
	var commercialID uint

	defer func() {
		h.mu.Lock()
		delete(h.observateurs, sessionID)
		h.mu.Unlock()
		conn.Close()

		if commercialID != 0 {
			h.Registre.Supprimer(commercialID)
			h.diffuser(message{Type: "offline", CommercialID: commercialID})
			h.Logger.Info("commercial hors ligne", zap.Uint("commercialId", commercialID))
		}
		h.Logger.Info("client de suivi déconnecté", zap.String("sessionId", sessionID))
	}()

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "observe":
			h.mu.Lock()
			h.observateurs[sessionID] = conn
			err := conn.WriteJSON(message{Type: "snapshot", Positions: h.Registre.Toutes()})
			h.mu.Unlock()
			if err != nil {
				return
			}

		case "position":
			if msg.CommercialID == 0 {
				continue
			}
			commercialID = msg.CommercialID
			horodatage := msg.Horodatage
			if horodatage.IsZero() {
				horodatage = time.Now().UTC()
			}
			position := PositionGPS{
				CommercialID: msg.CommercialID,
				Latitude:     msg.Latitude,
				Longitude:    msg.Longitude,
				Vitesse:      msg.Vitesse,
				Cap:          msg.Cap,
				Precision:    msg.Precision,
				Horodatage:   horodatage,
			}
			h.Registre.MettreAJour(position)
			h.diffuser(message{
				Type:         "position",
				CommercialID: position.CommercialID,
				Latitude:     position.Latitude,
				Longitude:    position.Longitude,
				Vitesse:      position.Vitesse,
				Cap:          position.Cap,
				Precision:    position.Precision,
				Horodatage:   position.Horodatage,
			})

		default:
			h.Logger.Warn("message de suivi ignoré",
				zap.String("sessionId", sessionID),
				zap.String("type", msg.Type))
		}
	}
}

// diffuser pousse un message à tous les observateurs; une connexion en
// échec est retirée du registre d'observateurs.
func (h *Hub) diffuser(msg message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.observateurs {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(h.observateurs, id)
		}
	}
}
