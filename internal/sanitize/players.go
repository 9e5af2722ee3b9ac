package sanitize

import (
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// Players normalizes a players snapshot. Anything that is not array-like
// becomes an empty list. Elements are carried through as-is; missing
// level or gear stay zero and are handled by the calculator. Elements
// that are not objects cannot be represented and are skipped.
func Players(raw []byte) ParseResult[[]entities.Player] {
	result := ParseResult[[]entities.Player]{Value: []entities.Player{}}

	res, ok, issue := root(raw)
	if !ok {
		result.Defaulted = true
		if issue != "" {
			result.issuef("players: %s", issue)
		}
		return result
	}

	items, ok := sequence(res)
	if !ok {
		result.Defaulted = true
		result.issuef("players: expected a sequence, got %s", res.Type)
		return result
	}

	for i, item := range items {
		if !item.IsObject() {
			result.issuef("players[%d]: skipped %s element", i, item.Type)
			continue
		}
		result.Value = append(result.Value, player(item))
	}
	return result
}

func player(obj gjson.Result) entities.Player {
	p := entities.Player{
		ID:             text(obj.Get("id")),
		Name:           text(obj.Get("name")),
		Gender:         text(obj.Get("gender")),
		Class:          text(obj.Get("class")),
		SecondaryClass: text(obj.Get("secondaryClass")),
		Race:           text(obj.Get("race")),
		SecondaryRace:  text(obj.Get("secondaryRace")),
		IsHalfBreed:    truthy(obj.Get("isHalfBreed")),
		IsSuper:        truthy(obj.Get("isSuper")),
		Avatar:         text(obj.Get("avatar")),
	}
	if level, ok := number(obj.Get("level")); ok {
		p.Level = level
	}
	if gear, ok := number(obj.Get("gear")); ok {
		p.Gear = gear
	}
	return p
}
