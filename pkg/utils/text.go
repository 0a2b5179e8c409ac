package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// Slugify lowercases s, strips diacritics and collapses everything that is not
// [a-z0-9] into single hyphens. "Strength & Power" becomes "strength-power".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}

	s = reNonAlnum.ReplaceAllString(string(buf), "-")
	s = reHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatThousands renders n with en-US digit grouping (1400 -> "1,400").
func FormatThousands(n int) string {
	return pricePrinter.Sprintf("%d", n)
}
