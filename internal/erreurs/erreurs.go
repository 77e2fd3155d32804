package erreurs

import (
	"errors"
	"net/http"
)

// ErreurValidation signale une entrée invalide (champ manquant, enum
// inconnu, incohérence entre entités).
type ErreurValidation struct {
	Message string
}

func (e *ErreurValidation) Error() string { return e.Message }

// ErreurNonTrouve signale une entité référencée inexistante ou dans un
// état qui ne permet plus l'opération.
type ErreurNonTrouve struct {
	Message string
}

func (e *ErreurNonTrouve) Error() string { return e.Message }

func Validation(message string) error { return &ErreurValidation{Message: message} }

func NonTrouve(message string) error { return &ErreurNonTrouve{Message: message} }

// CodeHTTP traduit une erreur métier en code HTTP.
func CodeHTTP(err error) int {
	var ev *ErreurValidation
	if errors.As(err, &ev) {
		return http.StatusBadRequest
	}
	var en *ErreurNonTrouve
	if errors.As(err, &en) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Repondre écrit l'erreur sur la réponse avec le bon code.
func Repondre(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), CodeHTTP(err))
}
