package historique

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebutJournee(t *testing.T) {
	paris := time.FixedZone("Europe/Paris", 2*60*60)

	// 01:30 heure de Paris le 2 juin = 23:30 UTC le 1er juin
	instant := time.Date(2026, time.June, 2, 1, 30, 0, 0, paris)
	assert.Equal(t,
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		DebutJournee(instant))

	minuit := time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, minuit, DebutJournee(minuit))
	assert.Equal(t, minuit, DebutJournee(minuit.Add(23*time.Hour+59*time.Minute)))
}
