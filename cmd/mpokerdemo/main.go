// Command mpokerdemo drives the Barnett-Smart card protocol end to
// end over a CLI: the configured players (two by default) set up a
// session, register keys, jointly mask a full deck, run one proven
// shuffle-and-remask round and verify it, then reveal the top card. It is a sample application, not part of the core
// protocol, the same separation the teacher keeps between its
// bulletproofs/group/voteproof packages and its main.go/server.go demo
// driver.
package main

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/barnettsmart/mentalpoker/card"
	"github.com/barnettsmart/mentalpoker/cardprotocol"
	"github.com/barnettsmart/mentalpoker/curve"
	"github.com/barnettsmart/mentalpoker/internal/telemetry"
	"github.com/barnettsmart/mentalpoker/transcript"
)

func resolveGroup(name string) (curve.Group, error) {
	switch name {
	case "ristretto255", "":
		return curve.Ristretto255(), nil
	case "p256":
		return curve.P256(), nil
	default:
		return nil, fmt.Errorf("unknown curve backend: %s", name)
	}
}

func main() {
	app := &cli.App{
		Name:  "mpokerdemo",
		Usage: "Barnett-Smart mental poker protocol demo",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML config file"},
			&cli.IntFlag{Name: "rows", Usage: "deck rows (overrides config)"},
			&cli.IntFlag{Name: "cols", Usage: "deck columns (overrides config)"},
			&cli.StringFlag{Name: "curve", Usage: "curve backend: ristretto255 or p256 (overrides config)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error (overrides config)"},
		},
		Commands: []*cli.Command{playCmd},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides layers urfave/cli command-line overrides on top
// of a file-loaded config, the way drand's CLI flags override a
// loaded group file's values.
func applyFlagOverrides(cfg Config, c *cli.Context) Config {
	if c.IsSet("rows") {
		cfg.Rows = c.Int("rows")
	}
	if c.IsSet("cols") {
		cfg.Cols = c.Int("cols")
	}
	if c.IsSet("curve") {
		cfg.CurveName = c.String("curve")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg
}

var playCmd = &cli.Command{
	Name:  "play",
	Usage: "run a full setup-mask-shuffle-reveal demo session",
	Action: func(c *cli.Context) error {
		cfg, err := LoadConfig(c.String("config"))
		if err != nil {
			return err
		}
		cfg = applyFlagOverrides(cfg, c)

		if extra, err := parsePlayerOverrides(c.Args().Slice()); err != nil {
			return err
		} else if len(extra) > 0 {
			cfg.PlayerTeam = extra
		}

		log := telemetry.New(telemetry.ParseLevel(cfg.LogLevel))
		log.Infow("starting session", "rows", cfg.Rows, "cols", cfg.Cols, "curve", cfg.CurveName)

		group, err := resolveGroup(cfg.CurveName)
		if err != nil {
			return err
		}

		deckSize := cfg.Rows * cfg.Cols
		params, err := cardprotocol.Setup(rand.Reader, group, deckSize)
		if err != nil {
			return fmt.Errorf("setup: %w", err)
		}

		sessionID := uuid.New()
		tr := transcript.New(sessionID[:])
		log.Infow("session established", "session_id", sessionID.String())

		var registered []cardprotocol.RegisteredPlayer
		var players []cardprotocol.PlayerKeyPair
		for _, name := range cfg.PlayerTeam {
			id := []byte(name)
			player := cardprotocol.PlayerKeygen(rand.Reader, params, id)
			proof := cardprotocol.ProveKeyOwnership(params, tr.Clone(), player)
			if !cardprotocol.VerifyKeyOwnership(params, tr.Clone(), id, player.KeyPair.PK, proof) {
				return fmt.Errorf("key ownership proof rejected for player %s", name)
			}
			players = append(players, player)
			registered = append(registered, cardprotocol.RegisteredPlayer{ID: id, PK: player.KeyPair.PK, Proof: proof})
			log.Infow("player registered", "player", name)
		}

		aggPK, err := cardprotocol.ComputeAggregateKey(params, tr.Clone(), registered)
		if err != nil {
			return fmt.Errorf("aggregate key: %w", err)
		}
		log.Infow("aggregate key computed")

		deck, err := StandardDeck(group)
		if err != nil {
			return fmt.Errorf("deck: %w", err)
		}
		if len(deck) != deckSize {
			return fmt.Errorf("deck size %d does not match %d rows * %d cols", len(deck), cfg.Rows, cfg.Cols)
		}

		masked := make([]cardprotocol.MaskedCard, deckSize)
		for i, c := range deck {
			r := group.RandomScalar()
			masked[i] = cardprotocol.Mask(params, tr.Clone(), aggPK, c, r)
		}
		log.Infow("deck masked", "cards", deckSize)

		perm, err := reverseShufflePermutation(deckSize)
		if err != nil {
			return err
		}
		rho := make([]*curve.Scalar, deckSize)
		for i := range rho {
			rho[i] = group.RandomScalar()
		}

		result, err := cardprotocol.ShuffleAndRemask(params, tr.Clone(), aggPK, masked, perm, rho, cfg.Rows, cfg.Cols)
		if err != nil {
			return fmt.Errorf("shuffle: %w", err)
		}
		if err := cardprotocol.VerifyShuffle(params, tr.Clone(), aggPK, masked, result.New, cfg.Rows, cfg.Cols, result.Proof); err != nil {
			return fmt.Errorf("shuffle verification: %w", err)
		}
		log.Infow("shuffle verified")

		var tokens []cardprotocol.RevealToken
		for _, player := range players {
			token := cardprotocol.ComputeRevealToken(params, tr.Clone(), player, result.New[0])
			if !cardprotocol.VerifyRevealToken(params, tr.Clone(), player.KeyPair.PK, result.New[0], token) {
				return fmt.Errorf("reveal token rejected")
			}
			tokens = append(tokens, token)
		}
		opened, err := cardprotocol.Unmask(params, tr.Clone(), aggPK, result.New[0], tokens)
		if err != nil {
			return fmt.Errorf("unmask: %w", err)
		}
		log.Infow("card revealed", "card_encoding", opened.String())

		fmt.Println("Session complete:", sessionID.String())
		fmt.Println("Revealed card:", opened.String())
		return nil
	},
}

// reverseShufflePermutation is the fixed placeholder permutation used
// by the demo: it reverses the deck (π(i) = n-1-i) rather than sampling
// a random permutation.
func reverseShufflePermutation(n int) (*card.Permutation, error) {
	image := make([]int, n)
	for i := range image {
		image[i] = n - 1 - i
	}
	return card.New(image)
}

// parsePlayerOverrides parses trailing "play -- --player NAME ..."
// arguments with a dedicated pflag.FlagSet, letting callers override
// the config file's player roster without a dedicated urfave/cli flag
// for every possible player count.
func parsePlayerOverrides(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	players := fs.StringArray("player", nil, "add a player to the session roster (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return *players, nil
}
