package metrics

import (
	"time"

	"jump61/searcher"
)

// AgentConfig describes one player configuration under study.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // search plies, minimax only
	Seed  uint64 // base seed, random only
}

// GameRecord is one self-play game: which configs played and how it ended.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID, plays Red
	Agent2   int // AgentConfig.ID, plays Blue
	Winner   string
	Turns    int
	Duration time.Duration
}

// MoveRecord is one move inside a game, with the search effort behind it.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Turn   int
	Player string
	Square int
	Search searcher.MoveMetrics
}
