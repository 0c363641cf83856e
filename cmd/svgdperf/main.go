package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/larsgeb/Stein-Variational-Gradient-Descent/particles"
	"github.com/larsgeb/Stein-Variational-Gradient-Descent/potential"
	"github.com/larsgeb/Stein-Variational-Gradient-Descent/svgd"
)

func main() {
	n := flag.Int("n", 500, "Number of particles")
	d := flag.Int("d", 2, "Particle dimensionality")
	iters := flag.Int("iters", 100, "Iterations per run")
	repeat := flag.Int("repeat", 1, "Repeat the run N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *n <= 0 || *d <= 0 || *iters <= 0 {
		fmt.Fprintln(os.Stderr, "-n, -d and -iters must be > 0")
		os.Exit(2)
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := svgd.DefaultConfig()
	cfg.NIter = *iters
	bowl := potential.QuadraticBowl{}

	// Timing loop; each repeat gets a fresh cloud so runs are comparable.
	var total time.Duration
	for i := 0; i < *repeat; i++ {
		x := particles.Normal(*n, *d, 0, 3, uint64(i)+1)
		start := time.Now()
		if _, err := svgd.Update(x, bowl.Gradient, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "svgd: %v\n", err)
			os.Exit(2)
		}
		total += time.Since(start)
	}
	secs := total.Seconds()
	updates := float64(*n) * float64(*iters) * float64(*repeat)

	// Single line: N Dims Iters Time Particle-updates/s
	fmt.Printf("%s \t%d \t%d \t%d \t%s \t%.0f\n", *label, *n, *d, *iters, total, updates/secs)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
