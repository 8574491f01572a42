package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fynwyd/mabigo/internal/ai"
	"github.com/fynwyd/mabigo/internal/config"
	"github.com/fynwyd/mabigo/internal/data"
	"github.com/fynwyd/mabigo/internal/game/combat"
	"github.com/fynwyd/mabigo/internal/game/resolve"
	"github.com/fynwyd/mabigo/internal/model"
)

const ConfigPath = "config/combatsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// simStats collects resolution outcomes for the periodic reporter.
// Atomic because the reporter goroutine reads while the tick loop writes.
type simStats struct {
	hits        atomic.Int64
	blocked     atomic.Int64
	countered   atomic.Int64
	missed      atomic.Int64
	totalDamage atomic.Int64
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("MABIGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("combat simulator starting",
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"duration", cfg.DurationSeconds)

	if err := data.LoadSkills(); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	if err := data.LoadWeapons(); err != nil {
		return fmt.Errorf("loading weapons: %w", err)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	resolver := resolve.NewManager(cfg.Combat, rng)

	stats := &simStats{}
	resolver.SetHitObserver(func(r resolve.HitResult) {
		switch {
		case r.Blocked:
			stats.blocked.Add(1)
		case r.Countered:
			stats.countered.Add(1)
			stats.totalDamage.Add(int64(r.Damage))
		case r.Missed:
			stats.missed.Add(1)
		default:
			stats.hits.Add(1)
			stats.totalDamage.Add(int64(r.Damage))
		}
	})

	// A swordsman trading blows with a defender, and an archer picking at
	// the swordsman from range.
	aldric := model.NewCombatant(1, "Aldric",
		model.Stats{Dexterity: 10, Focus: 0, Will: 5},
		data.WeaponShortSword, 180, 60, model.NewPosition(0, 0))
	brennan := model.NewCombatant(2, "Brennan",
		model.Stats{Dexterity: 5, Focus: 0, Will: 10},
		data.WeaponShortSword, 220, 80, model.NewPosition(1.5, 0))
	cale := model.NewCombatant(3, "Cale",
		model.Stats{Dexterity: 15, Focus: 20, Will: 0},
		data.WeaponShortBow, 140, 50, model.NewPosition(0, 9))

	aldric.SetTarget(brennan)
	brennan.SetTarget(aldric)
	cale.SetTarget(aldric)

	var fighters []fighter

	build := func(actor *model.Combatant, mk func(*combat.Machine) ai.Driver) error {
		machine, err := combat.NewMachine(
			actor.ObjectID(), actor.Name(), actor.Stats(), actor.WeaponID(),
			actor.Stamina(), actor.Status(), actor, resolver, cfg.Combat, rng)
		if err != nil {
			return fmt.Errorf("machine for %s: %w", actor.Name(), err)
		}
		if t := actor.Target(); t != nil {
			machine.SetTarget(t)
		}
		machine.Subscribe(func(ev combat.Event) {
			slog.Debug("machine event",
				"entity", actor.Name(),
				"event", ev.Type,
				"skill", ev.Skill,
				"completed", ev.Completed,
				"success", ev.Success)
		})
		part := resolver.Register(actor, machine)
		fighters = append(fighters, fighter{part: part, driver: mk(machine)})
		return nil
	}

	if err := build(aldric, func(m *combat.Machine) ai.Driver {
		return ai.NewCharger(aldric, m, []model.SkillKind{
			model.SkillAttack, model.SkillAttack, model.SkillSmash,
		})
	}); err != nil {
		return err
	}
	if err := build(brennan, func(m *combat.Machine) ai.Driver {
		return ai.NewDefender(brennan, m, model.SkillDefense)
	}); err != nil {
		return err
	}
	if err := build(cale, func(m *combat.Machine) ai.Driver {
		return ai.NewArcher(cale, m)
	}); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	// Tick loop: the whole core is single-threaded and tick-driven; this
	// goroutine is the one thread.
	g.Go(func() error {
		dt := 1.0 / cfg.TickRate
		ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.TickRate))
		defer ticker.Stop()

		elapsed := 0.0
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			for _, f := range fighters {
				actor := f.part.Actor
				if actor.IsDead() {
					continue
				}
				actor.Status().Tick(dt)
				f.part.Machine.Tick(dt)
				regenerate(actor, f.part.Machine, cfg.Combat, dt)
				f.driver.Tick(dt)
			}
			resolver.Tick(dt)

			elapsed += dt
			if cfg.DurationSeconds > 0 && elapsed >= cfg.DurationSeconds {
				slog.Info("simulation duration reached", "elapsed", elapsed)
				return context.Canceled
			}
			if done, loser := fightOver(fighters); done {
				slog.Info("fight over", "defeated", loser)
				return context.Canceled
			}
		}
	})

	// Periodic stats reporter.
	g.Go(func() error {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				slog.Info("combat stats",
					"hits", stats.hits.Load(),
					"blocked", stats.blocked.Load(),
					"countered", stats.countered.Load(),
					"missed", stats.missed.Load(),
					"total_damage", stats.totalDamage.Load())
			}
		}
	})

	err = g.Wait()

	for _, f := range fighters {
		actor := f.part.Actor
		slog.Info("fighter summary",
			"name", actor.Name(),
			"hp", actor.CurrentHP(),
			"stamina", actor.Stamina().Current(),
			"meter", f.part.Meter.Value(),
			"phase", f.part.Machine.CurrentPhase())
	}
	slog.Info("final stats",
		"hits", stats.hits.Load(),
		"blocked", stats.blocked.Load(),
		"countered", stats.countered.Load(),
		"missed", stats.missed.Load(),
		"total_damage", stats.totalDamage.Load())

	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// regenerate applies passive stamina regeneration. Regeneration is
// suspended while any skill phase other than Uncharged is active; resting
// multiplies the rate.
func regenerate(actor *model.Combatant, machine *combat.Machine, cfg config.Combat, dt float64) {
	if machine.CurrentPhase() != combat.PhaseUncharged {
		return
	}
	rate := cfg.StaminaRegenPerSecond
	if actor.Status().IsResting() {
		rate *= cfg.RestRegenMultiplier
	}
	actor.Stamina().Regenerate(rate * dt)
}

// fighter pairs a registered participant with its scripted driver.
type fighter struct {
	part   *resolve.Participant
	driver ai.Driver
}

// fightOver reports whether any fighter has been defeated.
func fightOver(fighters []fighter) (bool, string) {
	for _, f := range fighters {
		if f.part.Actor.IsDead() {
			return true, f.part.Actor.Name()
		}
	}
	return false, ""
}

// parseLogLevel converts a config string to a slog.Level.
func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
