package service

import (
	"math"
	"time"
)

// Default review cadence for mochilas, in days.
const DiasRevisionMochila = 30

// Default look-ahead window for expiring items, in days.
const DiasLimiteVencimiento = 30

// diasEnteros returns floor((hasta − desde) / 24h). Negative spans floor
// toward minus infinity, so an expiry a few hours in the past counts as -1
// days, never 0.
func diasEnteros(desde, hasta time.Time) int {
	return int(math.Floor(hasta.Sub(desde).Hours() / 24))
}
