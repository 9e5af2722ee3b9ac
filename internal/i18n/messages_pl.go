package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

func init() {
	lang := language.Polish
	message.SetString(lang, string(KeyDefaultPlayerName), "Gracz %d")
	message.SetString(lang, string(KeyNewChallenger), "%s wkracza do lochu!")
	message.SetString(lang, string(KeyLeveledUp), "%s osiąga poziom %d!")
	message.SetString(lang, string(KeyVictory), "%s WYGRYWA GRĘ!")
	message.SetString(lang, string(KeyLostLevel), "%s traci poziom.")
	message.SetString(lang, string(KeyEatenByGazebo), "%s został pożarty przez Altankę.")
	message.SetString(lang, string(KeyResetLog), "Gra została zresetowana. Nowa przygoda się zaczyna!")
	message.SetString(lang, string(KeyLinkCopied), "Link skopiowany do schowka!")
	message.SetString(lang, string(KeyEscaped), "%s wyrzuca %d i ucieka!")
	message.SetString(lang, string(KeyCaught), "%s wyrzuca %d i nie zdołał uciec!")
	message.SetString(lang, string(KeyDeleteConfirm), "Usunąć tego gracza z gry?")
	message.SetString(lang, string(KeyResetWarning), "Zresetować wszystkie poziomy i ekwipunek? Tego nie da się cofnąć.")

	registerTable(entities.LanguagePolish, &tableSource{
		labels: map[string]string{
			"title":            "Licznik Poziomów Munchkin",
			"addPlayer":        "Dodaj Gracza",
			"reset":            "Reset",
			"superMode":        "Super Munchkin",
			"battleArena":      "Arena Walki",
			"monster":          "Potwór",
			"party":            "Drużyna",
			"threatLevel":      "Poziom Zagrożenia",
			"combatPower":      "Siła Bojowa",
			"playersWinning":   "Gracze wygrywają!",
			"monsterWinning":   "Potwór wygrywa!",
			"dungeonLog":       "Dziennik Lochu",
			"silenceInDungeon": "Cisza w lochu...",
			"level":            "Poziom",
			"gear":             "Ekwipunek",
			"gender":           "Płeć",
			"class":            "Klasa",
			"race":             "Rasa",
			"halfBreed":        "Półkrwi",
			"super":            "Super",
			"inviteFriends":    "Zaproś Znajomych",
			"runAway":          "Uciekaj",
			"undo":             "Cofnij",
		},
		genders: []string{"Mężczyzna", "Kobieta"},
		classes: map[entities.ClassID]string{
			entities.ClassNone:    "Brak",
			entities.ClassWarrior: "Wojownik",
			entities.ClassWizard:  "Czarodziej",
			entities.ClassCleric:  "Kapłan",
			entities.ClassThief:   "Złodziej",
		},
		races: map[entities.RaceID]string{
			entities.RaceHuman:    "Człowiek",
			entities.RaceElf:      "Elf",
			entities.RaceDwarf:    "Krasnolud",
			entities.RaceHalfling: "Niziołek",
		},
	})
}
