package idgen_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
)

func TestBase36Generator(t *testing.T) {
	testCases := []struct {
		name   string
		gen    *idgen.Base36Generator
		length int
	}{
		{name: "room", gen: idgen.NewRoomIDs(), length: 6},
		{name: "player", gen: idgen.NewPlayerIDs(), length: 9},
		{name: "log", gen: idgen.NewLogIDs(), length: 7},
		{name: "invalid length falls back", gen: idgen.NewBase36(0), length: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pattern := regexp.MustCompile(`^[0-9a-z]+$`)
			seen := map[string]bool{}
			for i := 0; i < 100; i++ {
				id := tc.gen.Generate()
				assert.Len(t, id, tc.length)
				assert.Regexp(t, pattern, id)
				seen[id] = true
			}
			assert.Greater(t, len(seen), 90)
		})
	}
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("p")
	assert.Equal(t, "p1", gen.Generate())
	assert.Equal(t, "p2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	assert.Regexp(t, `^conn_[0-9a-f-]{36}$`, idgen.NewUUID("conn").Generate())
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
