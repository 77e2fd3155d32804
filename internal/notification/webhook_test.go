package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookEnvoyer(t *testing.T) {
	var recu map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recu))
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, zap.NewNop())
	n.Envoyer("alice@exemple.fr", "Invitation", "Vous êtes invitée.")

	require.NotNil(t, recu)
	assert.Equal(t, "alice@exemple.fr", recu["destinataire"])
	assert.Equal(t, "Invitation", recu["sujet"])
	assert.Equal(t, "Vous êtes invitée.", recu["corps"])
}

func TestWebhookSansURL(t *testing.T) {
	n := NewWebhook("", zap.NewNop())
	// ne doit ni paniquer ni bloquer
	n.Envoyer("alice@exemple.fr", "Invitation", "corps")
}

func TestWebhookRelaisEnErreur(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhook(srv.URL, zap.NewNop())
	// best effort: l'erreur du relais est journalisée, jamais remontée
	n.Envoyer("alice@exemple.fr", "Invitation", "corps")
}
