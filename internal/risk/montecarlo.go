package risk

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"QuantSentinel/internal/model"
)

// tradingDaysPerYear converts annualized volatility to daily volatility.
const tradingDaysPerYear = 252

// SimulationParams configures one Monte Carlo run.
type SimulationParams struct {
	Price            float64
	AnnualVolatility float64
	Days             int
	Simulations      int
	Confidence       float64
	Seed             int64
	Workers          int // 0 means NumCPU
}

// MonteCarlo simulates Simulations independent price paths of Days daily
// log-returns drawn from a zero-mean normal with daily volatility
// AnnualVolatility/sqrt(252), and summarizes the terminal distribution.
//
// Each path derives its own RNG from the base seed, so a fixed seed gives
// identical results no matter how many workers run the batches.
func MonteCarlo(p SimulationParams) (*model.SimulationResult, error) {
	if p.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %g", model.ErrSimulation, p.Price)
	}
	if p.AnnualVolatility <= 0 {
		return nil, fmt.Errorf("%w: volatility must be positive, got %g", model.ErrSimulation, p.AnnualVolatility)
	}
	if p.Days <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", model.ErrSimulation, p.Days)
	}
	if p.Simulations <= 0 {
		return nil, fmt.Errorf("%w: simulation count must be positive, got %d", model.ErrSimulation, p.Simulations)
	}
	if p.Confidence <= 0 || p.Confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence level must be in (0,1), got %g", model.ErrSimulation, p.Confidence)
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > p.Simulations {
		workers = p.Simulations
	}

	dailyVol := p.AnnualVolatility / math.Sqrt(tradingDaysPerYear)
	paths := make([][]float64, p.Simulations)

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := rand.New(rand.NewSource(pathSeed(p.Seed, i)))
				path := make([]float64, p.Days)
				logSum := 0.0
				for d := 0; d < p.Days; d++ {
					logSum += rng.NormFloat64() * dailyVol
					path[d] = p.Price * math.Exp(logSum)
				}
				paths[i] = path
			}
		}()
	}
	for i := 0; i < p.Simulations; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	finals := make([]float64, p.Simulations)
	sum := 0.0
	maxP := math.Inf(-1)
	minP := math.Inf(1)
	for i, path := range paths {
		f := path[p.Days-1]
		finals[i] = f
		sum += f
		maxP = math.Max(maxP, f)
		minP = math.Min(minP, f)
	}
	sort.Float64s(finals)

	return &model.SimulationResult{
		ExpectedPrice: sum / float64(p.Simulations),
		VaRPrice:      percentile(finals, (1-p.Confidence)*100),
		MaxPrice:      maxP,
		MinPrice:      minP,
		Paths:         paths,
	}, nil
}

// pathSeed mixes the base seed with the path index (splitmix64) so that
// consecutive paths get well-separated RNG streams.
func pathSeed(base int64, path int) int64 {
	z := uint64(base) + uint64(path+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
