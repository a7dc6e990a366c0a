package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-leo/flyweight"
	"go.uber.org/zap"
)

const version = "v1.0.0"

var (
	configPath = flag.String("config", "", "path of a TOML config file. (optional)")
	catalog    = flag.Bool("catalog", false, "print the unit catalog as JSON and exit")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of flyweight:\n")
	fmt.Fprintf(os.Stderr, "\tflyweight [-config flyweight.toml] [-catalog]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("flyweight: ")
}

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = Usage
	flag.Parse()
	if *showVersion {
		fmt.Printf("flyweight %v\n", version)
		return
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	registry := flyweight.NewRegistry()
	defer registry.Close()

	if *catalog {
		data, err := registry.MarshalJSON()
		if err != nil {
			logger.Fatal("marshal catalog", zap.Error(err))
		}
		fmt.Println(string(data))
		return
	}

	counts := run(cfg, registry, os.Stdout, logger)
	for _, key := range registry.Keys() {
		logger.Info("shared unit handed out", zap.String("key", key), zap.Int("times", counts[key]))
	}
}

// run walks cfg.Keys, displaying each unit cfg.Iterations times while the coordinates
// advance by cfg.Step. Unknown keys are skipped. It returns the hits per key.
func run(cfg Config, registry *flyweight.Registry, out io.Writer, logger *zap.Logger) map[string]int {
	counts := make(map[string]int)
	lookup := flyweight.DecorateLookup(registry.Lookup,
		flyweight.CountLookups(counts),
		flyweight.LogLookups(logger),
	)

	c := flyweight.Coordinates{Longitude: cfg.Longitude, Latitude: cfg.Latitude}
	for i, key := range cfg.Keys {
		if i > 0 {
			fmt.Fprintln(out)
		}
		for j := 0; j < cfg.Iterations; j++ {
			if unit, ok := lookup(key); ok {
				fmt.Fprintln(out, unit.Display(c))
			}
			c = c.Move(cfg.Step, cfg.Step)
		}
	}
	return counts
}
