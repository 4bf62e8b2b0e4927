package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"algokit/interval"
)

// Config describes one demo scenario: a booked schedule, an interval
// to insert into it, and an optional unordered batch to merge
type Config struct {
	Schedule [][2]int `yaml:"Schedule"`
	Insert   [2]int   `yaml:"Insert"`
	Batch    [][2]int `yaml:"Batch"`
}

func loadConfig() (*Config, error) {
	path := flag.String("config", "config.yaml", "path to scenario file")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}

	return &cfg, nil
}

func toIntervals(pairs [][2]int) ([]interval.Interval[int], error) {
	out := make([]interval.Interval[int], 0, len(pairs))
	for _, p := range pairs {
		iv, err := interval.New(p[0], p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}
