package utility

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxNameRunes = 24

// RandomColorHex returns a #rrggbb colour with each component kept away from the extremes.
func RandomColorHex() string {
	r := rand.Intn(248) + 4
	g := rand.Intn(248) + 4
	b := rand.Intn(248) + 4
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CleanDisplayName normalises a user supplied name: NFC form, control characters
// dropped, surrounding space trimmed and the length capped.
func CleanDisplayName(name string) string {
	name = norm.NFC.String(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if len(runes) > maxNameRunes {
		name = strings.TrimSpace(string(runes[:maxNameRunes]))
	}
	return name
}
