package entities

// Language selects the string table used for display and log messages
type Language string

// Supported languages
const (
	LanguageEnglish Language = "en"
	LanguagePolish  Language = "pl"
)

// DefaultLanguage is used when a client does not say otherwise
const DefaultLanguage = LanguageEnglish

// IsValid reports whether the language has a string table
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguagePolish
}

// ClassID is the stable identifier of a character class.
// Player documents store the localized label; rules compare identifiers.
type ClassID string

// Known classes
const (
	ClassNone    ClassID = "none"
	ClassWarrior ClassID = "warrior"
	ClassWizard  ClassID = "wizard"
	ClassCleric  ClassID = "cleric"
	ClassThief   ClassID = "thief"
)

// ClassIDs lists classes in display order
var ClassIDs = []ClassID{ClassNone, ClassWarrior, ClassWizard, ClassCleric, ClassThief}

// RaceID is the stable identifier of a race
type RaceID string

// Known races
const (
	RaceHuman    RaceID = "human"
	RaceElf      RaceID = "elf"
	RaceDwarf    RaceID = "dwarf"
	RaceHalfling RaceID = "halfling"
)

// RaceIDs lists races in display order
var RaceIDs = []RaceID{RaceHuman, RaceElf, RaceDwarf, RaceHalfling}
