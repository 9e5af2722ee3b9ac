package i18n

import (
	"strings"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

type tableSource struct {
	labels  map[string]string
	genders []string
	classes map[entities.ClassID]string
	races   map[entities.RaceID]string
}

var tables = map[entities.Language]*tableSource{}

// classIDs maps every known localized label (lowercased) and every
// stable identifier back to the class identifier.
var classIDs = map[string]entities.ClassID{}

func registerTable(lang entities.Language, src *tableSource) {
	tables[lang] = src
	for id, label := range src.classes {
		classIDs[strings.ToLower(label)] = id
		classIDs[string(id)] = id
	}
}

func source(lang entities.Language) *tableSource {
	if src, ok := tables[lang]; ok {
		return src
	}
	return tables[entities.DefaultLanguage]
}

// Table is the client-facing string table for one language
type Table struct {
	Language entities.Language `json:"lang"`
	Labels   map[string]string `json:"labels"`
	Genders  []string          `json:"genders"`
	Classes  []Option          `json:"classes"`
	Races    []Option          `json:"races"`
}

// Option pairs a stable identifier with its localized label
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TableFor builds the string table for a language, English when unknown
func TableFor(lang entities.Language) *Table {
	if !lang.IsValid() {
		lang = entities.DefaultLanguage
	}
	src := source(lang)

	labels := make(map[string]string, len(labelKeys))
	for _, key := range labelKeys {
		labels[key] = src.labels[key]
	}

	classes := make([]Option, 0, len(entities.ClassIDs))
	for _, id := range entities.ClassIDs {
		classes = append(classes, Option{ID: string(id), Label: src.classes[id]})
	}

	races := make([]Option, 0, len(entities.RaceIDs))
	for _, id := range entities.RaceIDs {
		races = append(races, Option{ID: string(id), Label: src.races[id]})
	}

	genders := make([]string, len(src.genders))
	copy(genders, src.genders)

	return &Table{
		Language: lang,
		Labels:   labels,
		Genders:  genders,
		Classes:  classes,
		Races:    races,
	}
}

// ClassIDFor resolves a stored class value to its identifier. Both stable
// identifiers and localized labels in any language are accepted; anything
// else is ClassNone.
func ClassIDFor(label string) entities.ClassID {
	if id, ok := classIDs[strings.ToLower(strings.TrimSpace(label))]; ok {
		return id
	}
	return entities.ClassNone
}

// ClassLabel returns the localized label of a class
func ClassLabel(lang entities.Language, id entities.ClassID) string {
	return source(lang).classes[id]
}

// RaceLabel returns the localized label of a race
func RaceLabel(lang entities.Language, id entities.RaceID) string {
	return source(lang).races[id]
}

// DefaultGender is the gender given to new players. Stored as the English
// value regardless of language.
const DefaultGender = "Male"

// DefaultPlayer builds the placeholder player added as seat n (1-based)
func DefaultPlayer(lang entities.Language, id string, n int) entities.Player {
	return entities.Player{
		ID:      id,
		Name:    Sprintf(lang, KeyDefaultPlayerName, n),
		Level:   entities.MinLevel,
		Gear:    0,
		Gender:  DefaultGender,
		Class:   ClassLabel(lang, entities.ClassIDs[0]),
		Race:    RaceLabel(lang, entities.RaceIDs[0]),
		IsSuper: false,
	}
}
