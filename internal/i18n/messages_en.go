package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

func init() {
	lang := language.English
	message.SetString(lang, string(KeyDefaultPlayerName), "Player %d")
	message.SetString(lang, string(KeyNewChallenger), "%s enters the dungeon!")
	message.SetString(lang, string(KeyLeveledUp), "%s reached level %d!")
	message.SetString(lang, string(KeyVictory), "%s HAS WON THE GAME!")
	message.SetString(lang, string(KeyLostLevel), "%s lost a level.")
	message.SetString(lang, string(KeyEatenByGazebo), "%s was eaten by a Gazebo.")
	message.SetString(lang, string(KeyResetLog), "The game has been reset. A new adventure begins!")
	message.SetString(lang, string(KeyLinkCopied), "Link copied to clipboard!")
	message.SetString(lang, string(KeyEscaped), "%s rolled a %d and ran away!")
	message.SetString(lang, string(KeyCaught), "%s rolled a %d and failed to escape!")
	message.SetString(lang, string(KeyDeleteConfirm), "Remove this player from the game?")
	message.SetString(lang, string(KeyResetWarning), "Reset every level and all gear? This cannot be undone.")

	registerTable(entities.LanguageEnglish, &tableSource{
		labels: map[string]string{
			"title":            "Munchkin Level Counter",
			"addPlayer":        "Add Player",
			"reset":            "Reset",
			"superMode":        "Super Munchkin",
			"battleArena":      "Battle Arena",
			"monster":          "Monster",
			"party":            "Party",
			"threatLevel":      "Threat Level",
			"combatPower":      "Combat Power",
			"playersWinning":   "Players are winning!",
			"monsterWinning":   "Monster is winning!",
			"dungeonLog":       "Dungeon Log",
			"silenceInDungeon": "Silence in the dungeon...",
			"level":            "Level",
			"gear":             "Gear",
			"gender":           "Gender",
			"class":            "Class",
			"race":             "Race",
			"halfBreed":        "Half-Breed",
			"super":            "Super",
			"inviteFriends":    "Invite Friends",
			"runAway":          "Run Away",
			"undo":             "Undo",
		},
		genders: []string{"Male", "Female"},
		classes: map[entities.ClassID]string{
			entities.ClassNone:    "None",
			entities.ClassWarrior: "Warrior",
			entities.ClassWizard:  "Wizard",
			entities.ClassCleric:  "Cleric",
			entities.ClassThief:   "Thief",
		},
		races: map[entities.RaceID]string{
			entities.RaceHuman:    "Human",
			entities.RaceElf:      "Elf",
			entities.RaceDwarf:    "Dwarf",
			entities.RaceHalfling: "Halfling",
		},
	})
}
