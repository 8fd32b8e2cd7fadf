package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits an identifier into words.
// Examples:
//   - "inputPath" -> ["input", "Path"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "the_last_one" -> ["the", "last", "one"]
//   - "ALMOST_THERE" -> ["ALMOST", "THERE"]
//   - "aye-bee-cee" -> ["aye", "bee", "cee"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if current.Len() > 0 && startsWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// Camel joins the words of s in camelCase. Words after the first are
// capitalized and the rest of each word is lowercased, so "parseURL" becomes
// "parseUrl". A later word starting with a digit is prefixed with an
// underscore to keep it apart from the word before it.
func Camel(s string) string {
	var b strings.Builder

	for i, w := range Words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}

		writeTitle(&b, w, true)
	}

	return b.String()
}

// Pascal joins the words of s in PascalCase.
func Pascal(s string) string {
	var b strings.Builder

	for i, w := range Words(s) {
		writeTitle(&b, w, i > 0)
	}

	return b.String()
}

// Kebab joins the lowercased words of s with dashes.
func Kebab(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "-")
}

// Fold lowercases s and drops every separator. Two spellings of the same
// name fold to the same string: "aye-bee", "ayeBee", "AYE_BEE" -> "ayebee".
func Fold(s string) string {
	return strings.ToLower(strings.Join(Words(s), ""))
}

// IsCamel reports whether s is already a camelCase key: letters and digits
// only, starting with a lowercase letter, and unchanged by Camel.
func IsCamel(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if s == "" || !unicode.IsLower(first) {
		return false
	}

	if strings.IndexFunc(s, isSeparator) >= 0 {
		return false
	}

	return Camel(s) == s
}

func writeTitle(b *strings.Builder, w string, separateDigit bool) {
	first, size := utf8.DecodeRuneInString(w)
	if separateDigit && unicode.IsDigit(first) {
		b.WriteByte('_')
	}

	b.WriteRune(unicode.ToUpper(first))
	b.WriteString(strings.ToLower(w[size:]))
}

// isSeparator returns true for every rune that cannot be part of a word.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// lowercase or digit followed by uppercase: "inputPath" -> split before 'P'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// end of an acronym: "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
