package client

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
)

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest("table1", "pl", map[string]any{"type": "adjustLevel", "playerId": "p1", "delta": -1})
	require.NoError(t, err)

	fields := req.AsMap()
	assert.Equal(t, "table1", fields["room"])
	assert.Equal(t, "pl", fields["lang"])
	assert.Equal(t, "adjustLevel", fields["type"])
	assert.Equal(t, float64(-1), fields["delta"])

	req, err = buildRequest("table1", "", nil)
	require.NoError(t, err)
	assert.NotContains(t, req.AsMap(), "lang")
}

func TestDescribeFrame(t *testing.T) {
	testCases := []struct {
		name     string
		frame    string
		expected string
	}{
		{
			name:     "effect",
			frame:    `{"type":"effect","cue":"levelUp","playerId":"p1"}`,
			expected: "♪ levelUp for p1",
		},
		{
			name:     "idle state",
			frame:    `{"type":"state","players":[{"name":"Ala","level":3,"gear":2}],"battle":{"active":false},"logs":[{"message":"Ala reached level 3!"}]}`,
			expected: "1 players | Ala L3 G2 || Ala reached level 3!",
		},
		{
			name:     "battle state",
			frame:    `{"type":"state","players":[],"battle":{"active":true},"summary":{"partyStrength":7,"monsterStrength":9,"outcome":"monster"}}`,
			expected: "0 players || party 7 vs monster 9 (monster)",
		},
		{
			name:     "unknown frame",
			frame:    `{"type":"other"}`,
			expected: `{"type":"other"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, describeFrame([]byte(tc.frame)))
		})
	}
}

func TestDescribeError(t *testing.T) {
	grpcErr := errors.ToGRPCError(errors.NotFound("player not found").WithRoom("table1"))
	assert.EqualError(t, describeError("rollEscape", grpcErr),
		"rollEscape rejected (NOT_FOUND): player not found map[room_id:table1]")

	plain := status.Error(codes.Unimplemented, "unknown intent")
	assert.EqualError(t, describeError("summon", plain), "summon rejected (UNIMPLEMENTED): unknown intent")
}
