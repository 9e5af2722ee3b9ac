package i18n

// Key names a registered message
type Key string

// Log and prompt messages. Format verbs are filled by the caller.
const (
	KeyDefaultPlayerName Key = "player.default_name" // %d
	KeyNewChallenger     Key = "log.new_challenger"  // %s
	KeyLeveledUp         Key = "log.leveled_up"      // %s %d
	KeyVictory           Key = "log.victory"         // %s
	KeyLostLevel         Key = "log.lost_level"      // %s
	KeyEatenByGazebo     Key = "log.eaten_by_gazebo" // %s
	KeyResetLog          Key = "log.reset"
	KeyLinkCopied        Key = "log.link_copied"
	KeyEscaped           Key = "log.escaped" // %s %d
	KeyCaught            Key = "log.caught"  // %s %d
	KeyDeleteConfirm     Key = "prompt.delete_confirm"
	KeyResetWarning      Key = "prompt.reset_warning"
)

// Labels are plain UI strings served to clients as-is.
var labelKeys = []string{
	"title",
	"addPlayer",
	"reset",
	"superMode",
	"battleArena",
	"monster",
	"party",
	"threatLevel",
	"combatPower",
	"playersWinning",
	"monsterWinning",
	"dungeonLog",
	"silenceInDungeon",
	"level",
	"gear",
	"gender",
	"class",
	"race",
	"halfBreed",
	"super",
	"inviteFriends",
	"runAway",
	"undo",
}
