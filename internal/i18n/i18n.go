// Package i18n holds the en/pl string tables and resolves a client's language.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supportedTags = []language.Tag{
	language.English,
	language.Polish,
}

var tagMatcher = language.NewMatcher(supportedTags)

var tagLanguages = map[language.Tag]entities.Language{
	language.English: entities.LanguageEnglish,
	language.Polish:  entities.LanguagePolish,
}

// Supported returns the languages that have string tables
func Supported() []entities.Language {
	return []entities.Language{entities.LanguageEnglish, entities.LanguagePolish}
}

// Tag returns the language tag backing a language, English when unknown
func Tag(lang entities.Language) language.Tag {
	if lang == entities.LanguagePolish {
		return language.Polish
	}
	return language.English
}

// Printer returns a message printer for the language
func Printer(lang entities.Language) *message.Printer {
	return message.NewPrinter(Tag(lang))
}

// Sprintf formats a registered message in the language
func Sprintf(lang entities.Language, key Key, args ...any) string {
	return Printer(lang).Sprintf(string(key), args...)
}

// ParseLanguage matches a free-form language value (for example "pl-PL")
// against the supported set.
func ParseLanguage(value string) (entities.Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.DefaultLanguage, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return entities.DefaultLanguage, false
	}
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return entities.DefaultLanguage, false
	}
	return tagLanguages[supportedTags[idx]], true
}

// Normalize coerces an unknown language to the default
func Normalize(value string) entities.Language {
	lang, _ := ParseLanguage(value)
	return lang
}

// ResolveRequest picks the language for an HTTP request: lang query
// parameter first, then Accept-Language, then English.
func ResolveRequest(r *http.Request) entities.Language {
	if r == nil {
		return entities.DefaultLanguage
	}

	if lang, ok := ParseLanguage(r.URL.Query().Get(LangParam)); ok {
		return lang
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return tagLanguages[supportedTags[idx]]
			}
		}
	}

	return entities.DefaultLanguage
}
