// selfplay plays the engine against itself with random sensible moves,
// either as a batch of concurrent games or as a GTP frontend on
// stdin/stdout.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jzhangbs/AlphaZero-1/game"
	"github.com/jzhangbs/AlphaZero-1/game/wq"
	"github.com/jzhangbs/AlphaZero-1/gtp"
)

type config struct {
	Size     int
	Komi     float64
	Games    int
	Workers  int
	MaxMoves int
	Seed     int64
	Superko  bool
	History  int
	GTP      bool
	Debug    bool
}

func (c *config) load(args []string) error {
	fs := flag.NewFlagSet("selfplay", flag.ContinueOnError)
	fs.IntVar(&c.Size, "size", 9, "board size")
	fs.Float64Var(&c.Komi, "komi", 7.5, "white's compensation")
	fs.IntVar(&c.Games, "games", 10, "number of games to play")
	fs.IntVar(&c.Workers, "workers", 4, "number of games played concurrently")
	fs.IntVar(&c.MaxMoves, "max-moves", 0, "move cap per game, 0 means 3×size²")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.BoolVar(&c.Superko, "superko", true, "enforce positional superko")
	fs.IntVar(&c.History, "history", 8, "number of board snapshots kept per game")
	fs.BoolVar(&c.GTP, "gtp", false, "speak GTP on stdin/stdout instead of self-playing")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	return fs.Parse(args)
}

func main() {
	cfg := &config{}
	if err := cfg.load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad flags")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.MaxMoves == 0 {
		cfg.MaxMoves = 3 * cfg.Size * cfg.Size
	}

	if cfg.GTP {
		if err := runGTP(cfg); err != nil {
			log.Fatal().Err(err).Msg("gtp session failed")
		}
		return
	}
	runSelfplay(cfg)
}

// randomMove picks a uniformly random legal move that does not fill
// the mover's own eyes, passing when none is left.
func randomMove(g *wq.Game, r *rand.Rand) game.PlayerMove {
	m := game.PlayerMove{Player: g.ToMove(), Single: game.Pass}
	if legal := g.LegalMoves(false); len(legal) > 0 {
		m.Single = legal[r.Intn(len(legal))]
	}
	return m
}

func runSelfplay(cfg *config) {
	log.Info().
		Int("size", cfg.Size).Float64("komi", cfg.Komi).
		Int("games", cfg.Games).Int("workers", cfg.Workers).
		Int64("seed", cfg.Seed).
		Msg("starting self-play")
	start := time.Now()

	var next, blackWins, whiteWins, draws atomic.Int64
	var eg errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		eg.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= int64(cfg.Games) {
					return nil
				}
				winner, moves, err := playOne(cfg, i)
				if err != nil {
					return err
				}
				switch winner {
				case wq.BlackP:
					blackWins.Add(1)
				case wq.WhiteP:
					whiteWins.Add(1)
				default:
					draws.Add(1)
				}
				log.Debug().Int64("game", i).Int("moves", moves).Msgf("winner %v", winner)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("self-play aborted")
	}

	log.Info().
		Int64("black", blackWins.Load()).
		Int64("white", whiteWins.Load()).
		Int64("draws", draws.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("done")
}

func playOne(cfg *config, i int64) (winner game.Player, moves int, err error) {
	r := rand.New(rand.NewSource(cfg.Seed + i))
	g := wq.New(cfg.Size, cfg.Komi, cfg.Superko, cfg.History)
	for moves = 0; moves < cfg.MaxMoves; moves++ {
		ended, err := g.Play(randomMove(g, r))
		if err != nil {
			return winner, moves, err
		}
		if ended {
			break
		}
	}
	return g.Winner(), moves, nil
}

func runGTP(cfg *config) error {
	r := rand.New(rand.NewSource(cfg.Seed))
	e := gtp.New(wq.New(cfg.Size, cfg.Komi, cfg.Superko, cfg.History), "selfplay", "1.0", nil)
	e.New = func(size int) game.State {
		return wq.New(size, cfg.Komi, cfg.Superko, cfg.History)
	}
	e.Generate = func(g game.State) game.PlayerMove {
		return randomMove(g.(*wq.Game), r)
	}

	in, out := e.Start()
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		cmd, ok := commandWord(line)
		if !ok {
			continue
		}
		in <- line
		fmt.Print(<-out)
		if cmd == "quit" {
			break
		}
	}
	return sc.Err()
}

// commandWord extracts the command token, skipping an optional numeric
// id. ok is false for the inputs the engine loop silently swallows, so
// the response read above cannot block forever.
func commandWord(line string) (cmd string, ok bool) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) > 0 {
		if _, err := strconv.Atoi(tokens[0]); err == nil {
			tokens = tokens[1:]
		}
	}
	if len(tokens) == 0 {
		return "", false
	}
	return tokens[0], true
}
