package generate

import (
	"strings"
	"unicode"
)

var initialisms = map[string]string{
	"Http": "HTTP",
	"Id":   "ID",
	"Json": "JSON",
	"Uri":  "URI",
	"Url":  "URL",
	"Xml":  "XML",
}

// goName spells the initialisms among the camel case words of name in upper case,
// e.g. HttpMethod becomes HTTPMethod.
func goName(name string) string {
	var b strings.Builder
	for _, word := range camelWords(name) {
		if initialism, ok := initialisms[word]; ok {
			word = initialism
		}
		b.WriteString(word)
	}
	return b.String()
}

func camelWords(name string) []string {
	var (
		words []string
		start int
	)
	runes := []rune(name)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}
