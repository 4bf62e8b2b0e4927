// Command algokit runs the interval operations over a yaml scenario
// file and logs the outcome.
package main

import (
	stdlog "log"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"algokit/interval"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Fatal(errors.Wrap(err, "load config"))
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		stdlog.Fatal(errors.Wrap(err, "init logger"))
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(log *zap.SugaredLogger, cfg *Config) error {
	booked, err := toIntervals(cfg.Schedule)
	if err != nil {
		return errors.Wrap(err, "bad schedule")
	}

	// the scenario file is hand-written, normalize instead of
	// trusting its order
	schedule, err := interval.Merge(booked)
	if err != nil {
		return errors.Wrap(err, "normalize schedule")
	}

	iv, err := interval.New(cfg.Insert[0], cfg.Insert[1])
	if err != nil {
		return errors.Wrap(err, "bad insert interval")
	}

	updated, err := interval.Insert(schedule, iv)
	if err != nil {
		return errors.Wrap(err, "insert")
	}

	log.Infow("inserted into schedule",
		"interval", iv,
		"schedule", updated,
		"blocks merged", len(schedule)+1-len(updated),
		"busy", updated.Size(),
		"free", updated.Gaps(),
	)

	if len(cfg.Batch) == 0 {
		return nil
	}

	batch, err := toIntervals(cfg.Batch)
	if err != nil {
		return errors.Wrap(err, "bad batch")
	}

	merged, err := interval.Merge(batch)
	if err != nil {
		return errors.Wrap(err, "merge batch")
	}

	log.Infow("merged batch",
		"in", len(batch),
		"out", merged,
		"busy", merged.Size(),
	)

	return nil
}
