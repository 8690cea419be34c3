package immofetcher

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonPriceRe   = regexp.MustCompile(`[^\d,.]`)
	intRe        = regexp.MustCompile(`-?\d+`)
	floatRe      = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// CleanText collapses whitespace runs to single spaces and trims the result.
func CleanText(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// ParsePrice converts price strings like "€230.000", "230.000 €" or
// "€230.000,50" into a numeric value. Italian convention: '.' separates
// thousands, ',' is the decimal mark. A comma-only input ("230,000") is read
// as a decimal comma; that is the inherited policy for the ambiguous case,
// not a claim about intent. Returns nil when nothing parseable remains.
func ParsePrice(value string) *float64 {
	text := CleanText(value)
	if text == "" {
		return nil
	}

	text = nonPriceRe.ReplaceAllString(text, "")

	hasComma := strings.Contains(text, ",")
	hasDot := strings.Contains(text, ".")
	switch {
	case hasComma:
		// Dots are thousands separators, the comma is the decimal mark.
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	case hasDot:
		text = strings.ReplaceAll(text, ".", "")
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// ParseInt extracts the first signed integer substring ("3 locali" -> 3).
func ParseInt(value string) *int {
	text := CleanText(value)
	if text == "" {
		return nil
	}

	match := intRe.FindString(text)
	if match == "" {
		return nil
	}

	parsed, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &parsed
}

// ParseFloat extracts the first signed decimal substring, treating a comma
// as the decimal mark ("85,5 m²" -> 85.5).
func ParseFloat(value string) *float64 {
	text := CleanText(value)
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, ",", ".")
	match := floatRe.FindString(text)
	if match == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &parsed
}
