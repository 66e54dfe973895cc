package combat

import (
	"sync"

	"fleetsim/internal/config"
	"fleetsim/internal/util"
)

type BatchSummary struct {
	Runs     int      `json:"runs"`
	WinsA    int      `json:"wins_a"`
	WinsB    int      `json:"wins_b"`
	Draws    int      `json:"draws"`
	Failed   int      `json:"failed"`
	WinRateA float64  `json:"win_rate_a"`
	WinRateB float64  `json:"win_rate_b"`
	DrawRate float64  `json:"draw_rate"`
	AvgTurns float64  `json:"avg_turns"`
	MaxTurns int      `json:"max_turns"`
	Errors   []string `json:"errors,omitempty"`
}

// RunBatch plays runs independent games of the scenario on a pool of workers.
// Run i is seeded with util.Derive(seed, i).
func RunBatch(sc *config.ScenarioConfig, seed int64, runs, workers int) BatchSummary {
	if workers < 1 {
		workers = 1
	}
	st := BatchSummary{Runs: runs}
	sumTurns := 0
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, runs)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := RunSingle(sc, util.Derive(seed, i), false)

				mu.Lock()
				if err != nil {
					st.Failed++
					if len(st.Errors) < 10 {
						st.Errors = append(st.Errors, err.Error())
					}
					mu.Unlock()
					continue
				}
				switch {
				case res.Outcome.Kind == OutcomeDraw:
					st.Draws++
				case res.Outcome.Winner == PlayerA:
					st.WinsA++
				case res.Outcome.Winner == PlayerB:
					st.WinsB++
				}
				sumTurns += res.Turns
				if res.Turns > st.MaxTurns {
					st.MaxTurns = res.Turns
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if played := runs - st.Failed; played > 0 {
		st.WinRateA = float64(st.WinsA) / float64(played)
		st.WinRateB = float64(st.WinsB) / float64(played)
		st.DrawRate = float64(st.Draws) / float64(played)
		st.AvgTurns = float64(sumTurns) / float64(played)
	}
	return st
}
