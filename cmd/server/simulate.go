package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-pantheon/internal/engine"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-pantheon/internal/entities/pantheon"
	"github.com/KirkDiggler/rpg-pantheon/internal/orchestrators/favor"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/rng"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
)

var (
	simPatron  string
	simTurns   int
	simSeed    uint64
	simSpecies string
	simClass   string
	simGold    int
	simPiety   int
	simVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted session against the sandbox world",
	Long: `Simulate joins a patron and plays a number of turns in process: each turn earns
piety, lets time pass and ends the turn. The narration is printed as it happens.

  pantheon simulate --patron yredelemnul --turns 200 --seed 7`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSimulation(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simPatron, "patron", "okawaru", "Patron to join")
	simulateCmd.Flags().IntVar(&simTurns, "turns", 100, "Turns to play")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", envSeed(), "Random seed (PANTHEON_SEED)")
	simulateCmd.Flags().StringVar(&simSpecies, "species", "human", "Player species")
	simulateCmd.Flags().StringVar(&simClass, "class", "fighter", "Player class")
	simulateCmd.Flags().IntVar(&simGold, "gold", 500, "Gold carried")
	simulateCmd.Flags().IntVar(&simPiety, "piety-per-turn", 3, "Piety earned each turn")
	simulateCmd.Flags().BoolVar(&simVerbose, "verbose", false, "Log favor events")
}

func runSimulation(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if simTurns < 0 {
		return fmt.Errorf("--turns must not be negative")
	}

	patron, err := pantheon.Parse(simPatron)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if simVerbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	world, err := engine.NewSandbox(&engine.SandboxConfig{
		Profile: &engine.Profile{
			Species:       simSpecies,
			Class:         simClass,
			XPLevel:       1,
			XPToNextLevel: 1000,
			Gold:          simGold,
			GoldGenerated: simGold,
			Orc:           simSpecies == "orc",
		},
		IDGenerator: idgen.NewSequential("ally"),
	})
	if err != nil {
		return err
	}

	state := pantheon.NewState("sim-" + strconv.FormatUint(simSeed, 10))
	bus := events.NewBus()
	rpgtoolkit.SubscribeAudit(bus, logger)
	publisher, err := rpgtoolkit.NewPublisher(&rpgtoolkit.PublisherConfig{EventBus: bus, PlayerID: state.SessionID})
	if err != nil {
		return err
	}

	svc, err := favor.NewOrchestrator(&favor.Config{
		State:  state,
		World:  world,
		Random: rng.New(rng.NewSeededRoller(simSeed)),
		Events: publisher,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	repo := favorstate.NewInMemoryRepository(clock.New())
	flush := func(turn int) {
		for _, n := range world.DrainTranscript() {
			fmt.Fprintf(out, "%4d  %s\n", turn, n.Message)
		}
	}

	joined, err := svc.Join(ctx, &favor.JoinInput{Patron: patron})
	if err != nil {
		return err
	}
	flush(0)
	if !joined.Joined {
		return fmt.Errorf("%s refused you (%s)", patron, joined.Refusal)
	}

	for turn := 1; turn <= simTurns; turn++ {
		if svc.State().ActivePatron != pantheon.None {
			if _, err := svc.GainPiety(ctx, &favor.GainPietyInput{Amount: simPiety, Denominator: 1}); err != nil {
				return err
			}
		}
		if _, err := svc.OnTimePassed(ctx, &favor.TimePassedInput{Ticks: 1}); err != nil {
			return err
		}
		if _, err := svc.OnTurnEnd(ctx); err != nil {
			return err
		}
		if _, err := repo.Save(ctx, &favorstate.SaveInput{State: svc.State()}); err != nil {
			return err
		}
		flush(turn)
	}

	final := svc.State()
	fmt.Fprintf(out, "\n%s: piety %d, rank %d, gifts %d\n",
		final.ActivePatron, final.Piety, svc.CurrentRank(), final.TotalGifts[patron])
	for _, p := range pantheon.All() {
		if final.Penance[p] > 0 {
			fmt.Fprintf(out, "penance toward %s: %d\n", p, final.Penance[p])
		}
	}
	return nil
}

func envSeed() uint64 {
	if v := os.Getenv("PANTHEON_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return seed
		}
	}
	return 1
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
