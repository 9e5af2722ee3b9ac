package sanitize

import (
	"github.com/KirkDiggler/munchkin-api/internal/entities"
)

// Logs normalizes a logs snapshot. Non-sequences become an empty list;
// elements pass through, skipping ones that are not objects.
func Logs(raw []byte) ParseResult[[]entities.GameLog] {
	result := ParseResult[[]entities.GameLog]{Value: []entities.GameLog{}}

	res, ok, issue := root(raw)
	if !ok {
		result.Defaulted = true
		if issue != "" {
			result.issuef("logs: %s", issue)
		}
		return result
	}

	items, ok := sequence(res)
	if !ok {
		result.Defaulted = true
		result.issuef("logs: expected a sequence, got %s", res.Type)
		return result
	}

	for i, item := range items {
		if !item.IsObject() {
			result.issuef("logs[%d]: skipped %s element", i, item.Type)
			continue
		}
		entry := entities.GameLog{
			ID:      text(item.Get("id")),
			Message: text(item.Get("message")),
			Type:    entities.LogType(text(item.Get("type"))),
		}
		if ts, ok := number(item.Get("timestamp")); ok {
			entry.Timestamp = int64(ts)
		}
		result.Value = append(result.Value, entry)
	}
	return result
}
