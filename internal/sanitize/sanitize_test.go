package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/sanitize"
)

type SanitizeTestSuite struct {
	suite.Suite
}

func TestSanitizeTestSuite(t *testing.T) {
	suite.Run(t, new(SanitizeTestSuite))
}

// malformed inputs every sanitizer must survive
var malformed = map[string][]byte{
	"nil":          nil,
	"empty":        []byte(""),
	"null":         []byte("null"),
	"number":       []byte("42"),
	"string":       []byte(`"players"`),
	"bool":         []byte("true"),
	"invalid json": []byte("{not json"),
	"keyed object": []byte(`{"a":1}`),
}

func (s *SanitizeTestSuite) TestBattleTotality() {
	for name, raw := range malformed {
		s.Run(name, func() {
			result := sanitize.Battle(raw)
			s.assertBattleInvariants(result.Value)
		})
	}
}

func (s *SanitizeTestSuite) TestSequenceTotality() {
	for name, raw := range malformed {
		s.Run(name, func() {
			players := sanitize.Players(raw)
			s.NotNil(players.Value)
			s.Empty(players.Value)
			s.True(players.Defaulted)

			logs := sanitize.Logs(raw)
			s.NotNil(logs.Value)
			s.Empty(logs.Value)
			s.True(logs.Defaulted)
		})
	}
}

func (s *SanitizeTestSuite) assertBattleInvariants(b entities.BattleState) {
	s.NotNil(b.SelectedPlayerIDs)
	s.NotNil(b.PlayerBonuses)
}

func (s *SanitizeTestSuite) TestBattleDefaults() {
	result := sanitize.Battle(nil)
	s.True(result.Defaulted)
	s.Equal(entities.DefaultBattleState(), result.Value)
	s.Empty(result.Issues)
}

func (s *SanitizeTestSuite) TestBattleCoercion() {
	testCases := []struct {
		name   string
		raw    string
		expect entities.BattleState
	}{
		{
			name: "well formed",
			raw:  `{"active":true,"monsterLevel":8,"monsterBonus":-5,"selectedPlayerIds":["a","b"],"playerBonuses":{"a":3}}`,
			expect: entities.BattleState{
				Active: true, MonsterLevel: 8, MonsterBonus: -5,
				SelectedPlayerIDs: []string{"a", "b"}, PlayerBonuses: map[string]int{"a": 3},
			},
		},
		{
			name: "missing fields",
			raw:  `{"active":1}`,
			expect: entities.BattleState{
				Active: true, MonsterLevel: 1, MonsterBonus: 0,
				SelectedPlayerIDs: []string{}, PlayerBonuses: map[string]int{},
			},
		},
		{
			name: "wrong types",
			raw:  `{"active":"","monsterLevel":"abc","monsterBonus":{},"selectedPlayerIds":"a","playerBonuses":[1]}`,
			expect: entities.BattleState{
				Active: false, MonsterLevel: 1, MonsterBonus: 0,
				SelectedPlayerIDs: []string{}, PlayerBonuses: map[string]int{},
			},
		},
		{
			name: "numeric strings",
			raw:  `{"monsterLevel":"12","monsterBonus":"5"}`,
			expect: entities.BattleState{
				MonsterLevel: 12, MonsterBonus: 5,
				SelectedPlayerIDs: []string{}, PlayerBonuses: map[string]int{},
			},
		},
		{
			name: "indexed object for selected ids",
			raw:  `{"monsterLevel":3,"selectedPlayerIds":{"1":"b","0":"a"}}`,
			expect: entities.BattleState{
				MonsterLevel: 3,
				SelectedPlayerIDs: []string{"a", "b"}, PlayerBonuses: map[string]int{},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := sanitize.Battle([]byte(tc.raw))
			s.False(result.Defaulted)
			s.Equal(tc.expect, result.Value)
		})
	}
}

func (s *SanitizeTestSuite) TestBattleReportsIssues() {
	result := sanitize.Battle([]byte(`{"monsterLevel":null,"selectedPlayerIds":[null,"a"],"playerBonuses":{"a":"x"}}`))
	s.Equal([]string{"a"}, result.Value.SelectedPlayerIDs)
	s.Empty(result.Value.PlayerBonuses)
	s.Len(result.Issues, 3)
}

func (s *SanitizeTestSuite) TestPlayers() {
	s.Run("array", func() {
		result := sanitize.Players([]byte(`[{"id":"a","name":"Alice","level":3,"gear":2,"class":"Warrior","isSuper":true,"secondaryClass":"Thief"}]`))
		s.False(result.Defaulted)
		s.Require().Len(result.Value, 1)
		s.Equal(entities.Player{
			ID: "a", Name: "Alice", Level: 3, Gear: 2, Class: "Warrior",
			IsSuper: true, SecondaryClass: "Thief",
		}, result.Value[0])
	})

	s.Run("indexed object keeps order", func() {
		result := sanitize.Players([]byte(`{"2":{"id":"c"},"0":{"id":"a"},"10":{"id":"d"},"1":{"id":"b"}}`))
		s.Require().Len(result.Value, 4)
		s.Equal("a", result.Value[0].ID)
		s.Equal("b", result.Value[1].ID)
		s.Equal("c", result.Value[2].ID)
		s.Equal("d", result.Value[3].ID)
	})

	s.Run("missing level and gear stay zero", func() {
		result := sanitize.Players([]byte(`[{"id":"a"}]`))
		s.Require().Len(result.Value, 1)
		s.Equal(0, result.Value[0].Level)
		s.Equal(0, result.Value[0].Gear)
	})

	s.Run("non object elements skipped", func() {
		result := sanitize.Players([]byte(`[null,{"id":"a"},7]`))
		s.Require().Len(result.Value, 1)
		s.Len(result.Issues, 2)
	})
}

func (s *SanitizeTestSuite) TestLogs() {
	result := sanitize.Logs([]byte(`[{"id":"l2","timestamp":2000,"message":"b","type":"success"},{"id":"l1","timestamp":1000,"message":"a","type":"info"}]`))
	s.False(result.Defaulted)
	s.Require().Len(result.Value, 2)
	s.Equal(entities.GameLog{ID: "l2", Timestamp: 2000, Message: "b", Type: entities.LogSuccess}, result.Value[0])
	s.Equal("l1", result.Value[1].ID)
}
