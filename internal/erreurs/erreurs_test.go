package erreurs

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeHTTP(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, CodeHTTP(Validation("champ manquant")))
	assert.Equal(t, http.StatusNotFound, CodeHTTP(NonTrouve("zone 3 introuvable")))
	assert.Equal(t, http.StatusInternalServerError, CodeHTTP(errors.New("panne")))

	// erreurs métier enveloppées
	wrapped := fmt.Errorf("contexte: %w", NonTrouve("introuvable"))
	assert.Equal(t, http.StatusNotFound, CodeHTTP(wrapped))
}

func TestRepondre(t *testing.T) {
	rec := httptest.NewRecorder()
	Repondre(rec, Validation("statut de porte inconnu"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "statut de porte inconnu")
}
