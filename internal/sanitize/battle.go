package sanitize

import (
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// Battle normalizes a battle snapshot field by field. An absent value is the
// default battle; a present one keeps every field that can be coerced.
func Battle(raw []byte) ParseResult[entities.BattleState] {
	result := ParseResult[entities.BattleState]{Value: entities.DefaultBattleState()}

	res, ok, issue := root(raw)
	if !ok {
		result.Defaulted = true
		if issue != "" {
			result.issuef("battle: %s", issue)
		}
		return result
	}
	if !res.IsObject() {
		result.Defaulted = true
		result.issuef("battle: expected an object, got %s", res.Type)
		return result
	}

	result.Value.Active = truthy(res.Get("active"))

	if level, ok := number(res.Get("monsterLevel")); ok {
		result.Value.MonsterLevel = level
	} else {
		result.issuef("battle.monsterLevel: defaulted to %d", entities.DefaultMonsterLevel)
	}

	if bonus, ok := number(res.Get("monsterBonus")); ok {
		result.Value.MonsterBonus = bonus
	} else if res.Get("monsterBonus").Exists() {
		result.issuef("battle.monsterBonus: defaulted to %d", entities.DefaultMonsterBonus)
	}

	selected := res.Get("selectedPlayerIds")
	if items, ok := sequence(selected); ok {
		for i, item := range items {
			id := text(item)
			if id == "" {
				result.issuef("battle.selectedPlayerIds[%d]: skipped %s element", i, item.Type)
				continue
			}
			result.Value.SelectedPlayerIDs = append(result.Value.SelectedPlayerIDs, id)
		}
	} else if selected.Exists() {
		result.issuef("battle.selectedPlayerIds: expected a sequence, got %s", selected.Type)
	}

	bonuses := res.Get("playerBonuses")
	if bonuses.IsObject() {
		bonuses.ForEach(func(key, value gjson.Result) bool {
			if bonus, ok := number(value); ok {
				result.Value.PlayerBonuses[key.String()] = bonus
			} else {
				result.issuef("battle.playerBonuses.%s: skipped %s value", key.String(), value.Type)
			}
			return true
		})
	} else if bonuses.Exists() && bonuses.Type != gjson.Null {
		result.issuef("battle.playerBonuses: expected an object, got %s", bonuses.Type)
	}

	return result
}
