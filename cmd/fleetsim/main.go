package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fleetsim/internal/combat"
	"fleetsim/internal/config"
	"fleetsim/internal/render"
	"fleetsim/internal/util"
)

func main() {
	env, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}

	var cfgPath, out string
	var seed int64
	var n, workers int
	var view, quiet bool
	flag.StringVar(&cfgPath, "config", env.ScenarioPath, "scenario yaml (empty = built-in default)")
	flag.StringVar(&out, "out", env.Out, "output file: result json (single) or summary json (batch)")
	flag.Int64Var(&seed, "seed", env.Seed, "seed (0 = scenario seed, then clock)")
	flag.IntVar(&n, "n", env.Runs, "number of games")
	flag.IntVar(&workers, "workers", env.Workers, "parallel games in batch mode")
	flag.BoolVar(&view, "view", true, "print the battlefield before and after a single game")
	flag.BoolVar(&quiet, "q", false, "do not print turns")
	flag.Parse()

	sc, err := config.LoadScenario(cfgPath)
	if err != nil {
		log.Fatal("Failed to load scenario: ", err)
	}
	if seed == 0 {
		seed = sc.Seed
	}
	seed = util.SeedOrNow(seed)

	if n <= 1 {
		runSingle(sc, seed, out, view, quiet)
		return
	}

	st := combat.RunBatch(sc, seed, n, workers)
	log.Printf("Batch: scenario=%s runs=%d seed=%d", sc.Name, n, seed)
	fmt.Println("====== Simulation Result ======")
	fmt.Printf("Player A Wins: %d (%.2f%%)\n", st.WinsA, 100*st.WinRateA)
	fmt.Printf("Player B Wins: %d (%.2f%%)\n", st.WinsB, 100*st.WinRateB)
	fmt.Printf("Draws:         %d (%.2f%%)\n", st.Draws, 100*st.DrawRate)
	fmt.Printf("Turns:         avg %.1f, max %d\n", st.AvgTurns, st.MaxTurns)
	if st.Failed > 0 {
		log.Printf("WARN: %d run(s) failed: %v", st.Failed, st.Errors)
	}
	if out != "" {
		if err := os.WriteFile(out, combat.MarshalPretty(st), 0644); err != nil {
			log.Fatal("Failed to write summary: ", err)
		}
		fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
	}
}

func runSingle(sc *config.ScenarioConfig, seed int64, out string, view, quiet bool) {
	var events []combat.TurnEvent
	e, rejected, err := combat.Setup(sc, seed, combat.WithListener(func(ev combat.TurnEvent) {
		events = append(events, ev)
		if !quiet {
			fmt.Println(render.Turn(ev))
		}
	}))
	if err != nil {
		log.Fatal("Setup failed: ", err)
	}
	fmt.Printf("Game initialized with a %dx%d battlefield.\n", sc.Size, sc.Size)
	for _, r := range rejected {
		log.Printf("Error adding ship: %v", r)
	}
	if view {
		_ = render.Grid(os.Stdout, e.Snapshot())
	}

	fmt.Println("\n--- Game Started ---")
	outcome, err := e.Start()
	if err != nil {
		log.Fatal("Cannot start game: ", err)
	}
	fmt.Println()
	fmt.Println(render.Outcome(outcome))
	if view {
		_ = render.Grid(os.Stdout, e.Snapshot())
	}

	if out == "" {
		return
	}
	res := combat.Summarize(e, sc, seed, rejected)
	res.Events = events
	if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
		log.Fatal("Failed to write result: ", err)
	}
	log.Printf("Single game %s finished in %d turns -> %s", res.GameID, res.Turns, out)
}
