// Package main is the entry point for the herald scoreboard demo.
//
// The demo broadcasts a scripted sequence of scoring plays through a
// single prioritized event: a scoreboard applies each play first, a
// lead-change watcher reacts next, logging runs last, and a stream sink
// relays every play onto an in-process broker topic.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/mknell/herald"
	"github.com/mknell/herald/payload"
	"github.com/mknell/herald/stream"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// PointsScored is the payload broadcast for every scripted play.
type PointsScored struct {
	payload.Envelope
	Team   string `json:"team"`
	Points int    `json:"points"`
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}

	logger := setupLogger(cfg.LogLevel)

	score := herald.New[*PointsScored]("score", herald.WithLogger(logger))

	// Totals update before anything else reads them
	board := newScoreboard(cfg.Home, cfg.Away)
	score.SubscribeFunc(board.apply, herald.PriorityHighest)

	// Lead changes are announced once the board has applied the play
	lead := ""
	score.SubscribeFunc(func(p *PointsScored) error {
		if l := board.leader(); l != "" && l != lead {
			logger.Info().Str("team", l).Msg("Lead change")
			lead = l
		}
		return nil
	}, herald.PriorityNormal)

	// Every play lands in the log last
	score.SubscribeFunc(func(p *PointsScored) error {
		logger.Info().
			Str("team", p.Team).
			Int("points", p.Points).
			Str("broadcast_id", p.BroadcastID).
			Msg("Points scored")
		return nil
	}, herald.PriorityLowest)

	// Relay plays onto an in-process broker topic and drain it
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 16,
	}, watermill.NopLogger{})

	relay, err := stream.NewPublisher[*PointsScored](pubSub, cfg.Topic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build relay: %v\n", err)
		return 1
	}
	if err := score.SubscribeStream(herald.PriorityLowest, relay); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to subscribe relay: %v\n", err)
		return 1
	}

	msgs, err := pubSub.Subscribe(context.Background(), cfg.Topic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to subscribe to topic %s: %v\n", cfg.Topic, err)
		return 1
	}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for msg := range msgs {
			logger.Debug().
				Str("message_id", msg.UUID).
				Str("topic", cfg.Topic).
				Msg("Relay delivered")
			msg.Ack()
		}
	}()

	for _, play := range scriptedPlays(cfg) {
		if _, err := score.Broadcast(play); err != nil {
			logger.Error().Err(err).Str("team", play.Team).Msg("Broadcast failed")
			return 1
		}
	}

	// The final buzzer carries no domain data
	buzzer := herald.New[*payload.Envelope]("buzzer", herald.WithLogger(logger))
	buzzer.SubscribeFunc(func(p *payload.Envelope) error {
		logger.Info().Time("occurred_at", p.OccurredAt).Msg("Game over")
		return nil
	}, herald.PriorityNormal)
	buzzer.Signal()

	score.UnsubscribeAll()
	pubSub.Close()
	<-drained

	fmt.Printf("Final score: %s %d - %d %s\n",
		cfg.Home, board.totals[cfg.Home], board.totals[cfg.Away], cfg.Away)
	return 0
}

// scoreboard keeps running totals for both teams.
type scoreboard struct {
	home   string
	away   string
	totals map[string]int
}

func newScoreboard(home, away string) *scoreboard {
	return &scoreboard{
		home:   home,
		away:   away,
		totals: map[string]int{home: 0, away: 0},
	}
}

// apply records a play. Subscribed at the highest priority so every
// other handler reads updated totals.
func (b *scoreboard) apply(p *PointsScored) error {
	if _, ok := b.totals[p.Team]; !ok {
		return fmt.Errorf("unknown team %q", p.Team)
	}
	b.totals[p.Team] += p.Points
	return nil
}

// leader returns the team ahead, or "" when tied.
func (b *scoreboard) leader() string {
	switch {
	case b.totals[b.home] > b.totals[b.away]:
		return b.home
	case b.totals[b.away] > b.totals[b.home]:
		return b.away
	default:
		return ""
	}
}

// scriptedPlays builds the demo's play sequence, capped at cfg.Plays.
func scriptedPlays(cfg Config) []*PointsScored {
	plays := []*PointsScored{
		{Team: cfg.Home, Points: 2},
		{Team: cfg.Away, Points: 3},
		{Team: cfg.Away, Points: 2},
		{Team: cfg.Home, Points: 3},
		{Team: cfg.Home, Points: 1},
		{Team: cfg.Away, Points: 2},
	}
	if cfg.Plays >= 0 && cfg.Plays < len(plays) {
		plays = plays[:cfg.Plays]
	}
	return plays
}

// setupLogger builds a console logger at the given level, falling back
// to info for unknown values.
func setupLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().Timestamp().Logger()
}

type options struct {
	ConfigPath string
	Debug      bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Herald - prioritized event broadcast demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: herald [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Herald %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
