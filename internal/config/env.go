package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are CLI defaults taken from the environment. Flags override them.
type Settings struct {
	ScenarioPath string
	Out          string
	Seed         int64
	Runs         int
	Workers      int
}

const (
	EnvScenario = "FLEETSIM_CONFIG"
	EnvOut      = "FLEETSIM_OUT"
	EnvSeed     = "FLEETSIM_SEED"
	EnvRuns     = "FLEETSIM_RUNS"
	EnvWorkers  = "FLEETSIM_WORKERS"
)

// LoadSettings loads the given .env files (missing files are skipped, variables
// already set win) and reads the FLEETSIM_* variables.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
	}
	st := Settings{
		ScenarioPath: os.Getenv(EnvScenario),
		Out:          os.Getenv(EnvOut),
		Runs:         1,
		Workers:      8,
	}
	var err error
	if st.Seed, err = envInt64(EnvSeed, 0); err != nil {
		return Settings{}, err
	}
	if st.Runs, err = envInt(EnvRuns, st.Runs); err != nil {
		return Settings{}, err
	}
	if st.Workers, err = envInt(EnvWorkers, st.Workers); err != nil {
		return Settings{}, err
	}
	return st, nil
}

func envInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envInt(key string, def int) (int, error) {
	n, err := envInt64(key, int64(def))
	return int(n), err
}
