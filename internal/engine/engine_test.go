package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/munchkin-api/internal/engine"
	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	players []entities.Player
	battle  entities.BattleState
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.players = []entities.Player{
		{ID: "p1", Name: "Alice", Level: 3, Gear: 0, Class: "Thief"},
		{ID: "p2", Name: "Bob", Level: 4, Gear: 0, Class: "Wizard"},
		{ID: "p3", Name: "Carol", Level: 2, Gear: 5, Class: "Cleric"},
	}
	s.battle = testutils.CreateTestBattle(7, 0, "p1", "p2")
}

func (s *EngineTestSuite) TestCombatStrength() {
	s.Run("level gear and bonus", func() {
		s.battle.PlayerBonuses["p3"] = 4
		s.Equal(11, engine.CombatStrength(s.players[2], s.battle))
	})

	s.Run("missing level counts as one", func() {
		s.Equal(1, engine.CombatStrength(entities.Player{ID: "x"}, entities.DefaultBattleState()))
	})

	s.Run("negative gear is allowed", func() {
		p := entities.Player{ID: "x", Level: 2, Gear: -3}
		s.Equal(-1, engine.CombatStrength(p, entities.DefaultBattleState()))
	})
}

func (s *EngineTestSuite) TestPartyStrength() {
	s.Equal(7, engine.PartyStrength(s.players, s.battle))

	s.Run("sum of individual strengths", func() {
		battle := s.battle.Clone()
		battle.SelectedPlayerIDs = append(battle.SelectedPlayerIDs, "p3")
		battle.PlayerBonuses["p1"] = 2
		expected := 0
		for _, p := range s.players {
			expected += engine.CombatStrength(p, battle)
		}
		s.Equal(expected, engine.PartyStrength(s.players, battle))
	})

	s.Run("removing a player removes their contribution", func() {
		battle := s.battle.Clone()
		battle.SelectedPlayerIDs = []string{"p2"}
		s.Equal(7-engine.CombatStrength(s.players[0], s.battle), engine.PartyStrength(s.players, battle))
	})

	s.Run("stale ids contribute zero", func() {
		battle := s.battle.Clone()
		battle.SelectedPlayerIDs = append(battle.SelectedPlayerIDs, "deleted")
		s.Equal(7, engine.PartyStrength(s.players, battle))
	})
}

func (s *EngineTestSuite) TestPartyBonusTotal() {
	s.battle.PlayerBonuses = map[string]int{"p1": 5, "p3": 10}
	s.Equal(5, engine.PartyBonusTotal(s.battle))
}

func (s *EngineTestSuite) TestResolveOutcome() {
	s.Run("tie without warrior goes to the monster", func() {
		s.Equal(7, engine.MonsterStrength(s.battle))
		s.False(engine.HasWarriorInParty(s.players, s.battle))
		s.Equal(engine.OutcomeMonsterWins, engine.ResolveOutcome(s.players, s.battle))
	})

	s.Run("warriors win ties", func() {
		players := entities.ClonePlayers(s.players)
		players[0].Class = "Warrior"
		s.Equal(engine.OutcomePartyWins, engine.ResolveOutcome(players, s.battle))
	})

	s.Run("polish warrior label wins ties", func() {
		players := entities.ClonePlayers(s.players)
		players[1].Class = "Wojownik"
		s.Equal(engine.OutcomePartyWins, engine.ResolveOutcome(players, s.battle))
	})

	s.Run("unselected warrior does not count", func() {
		players := entities.ClonePlayers(s.players)
		players[2].Class = "Warrior"
		s.Equal(engine.OutcomeMonsterWins, engine.ResolveOutcome(players, s.battle))
	})

	s.Run("stronger party wins", func() {
		battle := s.battle.Clone()
		battle.MonsterBonus = -1
		s.Equal(engine.OutcomePartyWins, engine.ResolveOutcome(s.players, battle))
	})

	s.Run("stronger monster wins even with warrior", func() {
		players := entities.ClonePlayers(s.players)
		players[0].Class = "Warrior"
		battle := s.battle.Clone()
		battle.MonsterBonus = 5
		s.Equal(engine.OutcomeMonsterWins, engine.ResolveOutcome(players, battle))
	})
}

func (s *EngineTestSuite) TestAdjustLevel() {
	testCases := []struct {
		name     string
		level    int
		delta    int
		levelCap int
		expected int
	}{
		{name: "up", level: 3, delta: 2, levelCap: 10, expected: 5},
		{name: "down", level: 3, delta: -1, levelCap: 10, expected: 2},
		{name: "floor", level: 2, delta: -5, levelCap: 10, expected: 1},
		{name: "ceiling", level: 9, delta: 5, levelCap: 10, expected: 10},
		{name: "super ceiling", level: 19, delta: 5, levelCap: 20, expected: 20},
		{name: "at floor pushing down", level: 1, delta: -1, levelCap: 10, expected: 1},
		{name: "at ceiling pushing up", level: 10, delta: 1, levelCap: 10, expected: 10},
		{name: "super level lowered by normal cap", level: 15, delta: 0, levelCap: 10, expected: 10},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.AdjustLevel(tc.level, tc.delta, tc.levelCap))
		})
	}

	s.Run("repeated adjustments stay in bounds", func() {
		for _, levelCap := range []int{entities.MaxLevel, entities.SuperMaxLevel} {
			level := 1
			for _, delta := range []int{5, 5, 5, 5, 5, -2, -20, 1, 30, -1, -100} {
				level = engine.AdjustLevel(level, delta, levelCap)
				s.GreaterOrEqual(level, 1)
				s.LessOrEqual(level, levelCap)
			}
		}
	})
}

func (s *EngineTestSuite) TestAdjustMonsterLevel() {
	s.Equal(6, engine.AdjustMonsterLevel(5, 1))
	s.Equal(1, engine.AdjustMonsterLevel(1, -1))
	s.Equal(1, engine.AdjustMonsterLevel(3, -10))
	s.Equal(40, engine.AdjustMonsterLevel(30, 10))
}

func (s *EngineTestSuite) TestSummarize() {
	s.battle.PlayerBonuses["p1"] = 3
	summary := engine.Summarize(s.players, s.battle)

	s.True(summary.Active)
	s.Equal(10, summary.PartyStrength)
	s.Equal(3, summary.PartyBonusTotal)
	s.Equal(7, summary.MonsterStrength)
	s.Equal(engine.OutcomePartyWins, summary.Outcome)
	s.Require().Len(summary.Players, 3)
	s.True(summary.Players[0].Leader)
	s.Equal(6, summary.Players[0].Strength)
	s.True(summary.Players[1].Selected)
	s.False(summary.Players[1].Leader)
	s.False(summary.Players[2].Selected)
}
