package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier envoie un message hors-bande (email relayé par webhook). Best
// effort: un échec est journalisé, jamais remonté à l'appelant.
type Notifier interface {
	Envoyer(destinataire, sujet, corps string)
}

// Webhook poste le message en JSON vers le relais configuré.
type Webhook struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
}

func NewWebhook(url string, logger *zap.Logger) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

func (n *Webhook) Envoyer(destinataire, sujet, corps string) {
	if n.URL == "" {
		n.Logger.Warn("webhook de notification non configuré, message ignoré",
			zap.String("destinataire", destinataire),
			zap.String("sujet", sujet))
		return
	}

	payload := map[string]string{
		"destinataire": destinataire,
		"sujet":        sujet,
		"corps":        corps,
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		n.Logger.Error("échec de l'envoi de la notification",
			zap.String("destinataire", destinataire),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.Logger.Error("le relais de notification a répondu en erreur",
			zap.String("destinataire", destinataire),
			zap.Int("status", resp.StatusCode))
	}
}
