// Command jump61 simulates the two-player spot-overflow territory game.
//
// It supports two subcommands:
//  1. "play" runs a single game between two automated players and prints
//     the final board
//  2. "experiment" runs self-play matchups across search depths and writes
//     the results as CSV files
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"jump61/engine"
	"jump61/experiments"
	"jump61/game"
	"jump61/player"
	"jump61/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cmd := &cli.Command{
		Name:     "jump61",
		Usage:    "two-player spot-overflow territory game simulator",
		Commands: []*cli.Command{playCommand(), experimentCommand()},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("jump61 failed")
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run a single game between two automated players",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 6, Usage: "board rows and columns"},
			&cli.IntFlag{Name: "red-depth", Value: searcher.DefaultDepth, Usage: "red's search depth in plies"},
			&cli.IntFlag{Name: "blue-depth", Value: searcher.DefaultDepth, Usage: "blue's search depth in plies"},
			&cli.BoolFlag{Name: "random-blue", Usage: "play blue with the random baseline instead of minimax"},
			&cli.IntFlag{Name: "seed", Value: 1, Usage: "seed for the random baseline"},
			&cli.BoolFlag{Name: "debug", Usage: "log every move and search summary"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			red := player.NewAI(game.Red, searcher.NewMinimax(
				searcher.WithDepth(cmd.Int("red-depth")),
				searcher.WithMetrics(),
			))
			var blue player.Player
			if cmd.Bool("random-blue") {
				blue = player.NewRandom(game.Blue, uint64(cmd.Int("seed")))
			} else {
				blue = player.NewAI(game.Blue, searcher.NewMinimax(
					searcher.WithDepth(cmd.Int("blue-depth")),
					searcher.WithMetrics(),
				))
			}

			e := engine.Local(cmd.Int("size"), red, blue)
			winner, moves := e.Run()

			fmt.Println(e.Board.DisplayString())
			if winner == game.None {
				fmt.Printf("no winner after %d moves\n", len(moves))
			} else {
				fmt.Printf("%s wins after %d moves\n", winner, len(moves))
			}
			return nil
		},
	}
}

func experimentCommand() *cli.Command {
	return &cli.Command{
		Name:  "experiment",
		Usage: "run self-play depth matchups and write CSV records",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 4, Usage: "board rows and columns"},
			&cli.IntFlag{Name: "games", Value: experiments.DefaultGames, Usage: "games per matchup"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return experiments.RunDepthToStrength(cmd.Int("size"), cmd.Int("games"))
		},
	}
}
