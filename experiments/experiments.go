package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"jump61/engine"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/player"
	"jump61/searcher"
)

// DefaultGames is the number of games played per matchup.
const DefaultGames = 20

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1},
	{ID: 2, Kind: "minimax", Depth: 2},
	{ID: 3, Kind: "minimax", Depth: 3},
	{ID: 4, Kind: "minimax", Depth: 4},
}

// RunDepthToStrength measures how search depth translates into playing
// strength: every depth config plays Red against the random baseline and
// against the depth-1 agent, for games per matchup on a size x size board.
// Records go to CSV under experiments/depth_to_strength/<timestamp>/.
func RunDepthToStrength(size, games int) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random"}

	configs := append([]metrics.AgentConfig{baseline}, depthConfigs...)
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
		matchUps = append(matchUps, []metrics.AgentConfig{config, depthConfigs[0]})
	}

	return runExperiment("depth_to_strength", size, games, configs, matchUps)
}

func runExperiment(name string, size, games int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	if games <= 0 {
		games = DefaultGames
	}
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to set up experiment %s: %w", name, err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().
			Interface("red", matchUp[0]).
			Interface("blue", matchUp[1]).
			Int("games", games).
			Msg("matchup starting")
		for i := 0; i < games; i++ {
			gameID++
			red := newPlayer(game.Red, matchUp[0], uint64(gameID))
			blue := newPlayer(game.Blue, matchUp[1], uint64(gameID))
			e := engine.Local(size, red, blue)

			start := time.Now()
			winner, moves := e.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:       gameID,
				Agent1:   matchUp[0].ID,
				Agent2:   matchUp[1].ID,
				Winner:   winner.String(),
				Turns:    len(moves),
				Duration: time.Since(start),
			})
			for _, move := range moves {
				move.Game = gameID
				moveRecords = append(moveRecords, move)
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", gameID).Msg("experiment complete")
	return nil
}

// newPlayer builds a player from its config. The per-game salt keeps random
// baselines from replaying the same game while staying reproducible.
func newPlayer(side game.Side, config metrics.AgentConfig, salt uint64) player.Player {
	switch config.Kind {
	case "random":
		return player.NewRandom(side, config.Seed+salt)
	case "minimax":
		return player.NewAI(side, searcher.NewMinimax(
			searcher.WithDepth(config.Depth),
			searcher.WithMetrics(),
		))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
