package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jozsa/internal/config"
	"jozsa/internal/metrics"
	"jozsa/internal/runner"
	"jozsa/internal/util"

	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults when empty)")
	mode := flag.String("mode", "", "run mode: interactive or sweep (overrides config)")
	length := flag.Int("length", 0, "oracle length; skips the interactive prompt")
	seed := flag.Int64("seed", 0, "generator seed; 0 draws from system entropy")
	policy := flag.String("policy", "", "classifier policy: exhaustive or majority")
	cheat := flag.Bool("cheat", false, "print the hidden doors and constant flag")
	flag.Parse()

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *mode, *length, *seed, *policy, *cheat)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		os.Exit(1)
	}

	util.SetVerbose(cfg.Logging.Verbose)
	logFile, err := util.SetupLogFile(cfg.Logging.LogFile)
	if err != nil {
		util.Warnf("log file disabled path=%s err=%v", cfg.Logging.LogFile, err)
	}
	defer util.CloseWithErr(logFile, "log file")

	if data, err := yaml.Marshal(&cfg); err == nil {
		util.Debugf("config:\n%s", string(data))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Listen != "" {
		addr, err := metrics.Serve(ctx, cfg.Metrics.Listen)
		if err != nil {
			util.Warnf("metrics endpoint disabled err=%v", err)
		} else {
			util.Infof("metrics listening on http://%s/metrics", addr)
		}
	}

	r, err := runner.New(cfg, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build runner: %v\n", err)
		os.Exit(1)
	}
	if err := r.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, mode string, length int, seed int64, policy string, cheat bool) {
	if mode != "" {
		cfg.Mode = mode
	}
	if length > 0 {
		cfg.Length = length
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if policy != "" {
		cfg.Classifier.Policy = policy
	}
	if cheat {
		cfg.Cheat = true
	}
}
