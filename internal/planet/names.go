package planet

import (
	"math/rand/v2"
	"strings"
)

// Placeholder values for planets missing from the static reference set.
const PlaceholderSector = "MADEUP"

var (
	nameOnsets = []string{
		"Ak", "Bel", "Cor", "Dra", "Ery", "Fen", "Gal", "Hel", "Ix", "Jor",
		"Kel", "Lor", "Mor", "Nex", "Os", "Pra", "Quo", "Ros", "Sul", "Tar",
		"Ur", "Vel", "Wex", "Yr", "Zan",
	}
	nameMiddles = []string{
		"a", "e", "i", "o", "u", "ae", "io", "an", "en", "or", "ul", "yr",
	}
	nameCodas = []string{
		"dor", "lis", "mar", "nus", "phi", "ra", "sek", "thys", "vin", "xis", "zar", "ck",
	}
	nameSuffixes = []string{
		"", "", "", "I", "II", "III", "IV", "V", "VI", "VII",
		"Prime", "Alpha", "Beta", "Gamma", "Major", "Minor",
	}
)

// PlaceholderName generates a stable planet name from seed. The same seed
// always yields the same name.
func PlaceholderName(seed uint32) string {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))

	var b strings.Builder
	b.WriteString(nameOnsets[rng.IntN(len(nameOnsets))])
	for range rng.IntN(2) {
		b.WriteString(nameMiddles[rng.IntN(len(nameMiddles))])
	}
	b.WriteString(nameCodas[rng.IntN(len(nameCodas))])

	name := strings.ToUpper(b.String())
	if suffix := nameSuffixes[rng.IntN(len(nameSuffixes))]; suffix != "" {
		name += " " + strings.ToUpper(suffix)
	}
	return name
}
