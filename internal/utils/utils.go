package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HasherMotDePasse génère un hash bcrypt pour le mot de passe fourni.
func HasherMotDePasse(motDePasse string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(motDePasse), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifierMotDePasse compare un hash bcrypt avec le mot de passe en clair.
func VerifierMotDePasse(hash, motDePasse string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(motDePasse))
	return err == nil
}

// GenererMotDePasseTemporaire génère un mot de passe aléatoire de 12 caractères.
func GenererMotDePasseTemporaire() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
