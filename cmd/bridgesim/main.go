// Command bridgesim plays boards of bridge between robot players and prints
// a summary of the results.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jason-s-yu/twoclubs/engine"
	"github.com/jason-s-yu/twoclubs/internal/config"
	"github.com/jason-s-yu/twoclubs/internal/robot"
	"github.com/jason-s-yu/twoclubs/internal/table"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Fatal("bridgesim failed")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	rng := engine.NewRand(cfg.Seed)
	var players [engine.NumSeats]robot.Player
	for i := range players {
		players[i] = robot.Compose(robot.NewRandomPlayer(rng), robot.NewThirdHandHigh(rng))
	}

	t, err := table.NewTable(table.Options{
		Players:        players,
		Seed:           cfg.Seed,
		AssignContract: cfg.AssignContract,
		Logger:         logrus.NewEntry(logrus.StandardLogger()),
	})
	if err != nil {
		return err
	}

	if cfg.RecordDir != "" {
		if err := os.MkdirAll(cfg.RecordDir, 0o755); err != nil {
			return fmt.Errorf("record dir: %w", err)
		}
		t.OnBoardEnd = func(b *engine.Board) {
			path := filepath.Join(cfg.RecordDir, fmt.Sprintf("board-%03d.json", b.Number()))
			if err := writeRecord(path, b.Record()); err != nil {
				logrus.WithError(err).WithField("path", path).Error("Record not written")
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"boards": cfg.Boards,
		"seed":   cfg.Seed,
		"assign": cfg.AssignContract,
	}).Info("Starting simulation")

	err = t.Run(ctx, cfg.Boards)
	fmt.Println(t.Stats())
	return err
}

func writeRecord(path string, rec engine.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := engine.WriteRecord(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
