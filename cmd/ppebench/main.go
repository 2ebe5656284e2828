// Command ppebench benchmarks gs-ppe's Setup, Randomize, and Verify across a
// range of equation shapes and charts the result.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/groth-sahai/gs-ppe/gs"
)

func main() {
	maxShape := flag.Int("max-shape", 8, "largest m=n equation shape to benchmark, swept from 1 to this value")
	iterations := flag.Int("iterations", 20, "number of iterations averaged per shape")
	output := flag.String("output", "ppebench.png", "PNG output path for the latency chart")
	flag.Parse()

	if *maxShape < 1 {
		fmt.Fprintln(os.Stderr, "Error: max-shape must be at least 1")
		os.Exit(1)
	}
	if *iterations < 1 {
		fmt.Fprintln(os.Stderr, "Error: iterations must be at least 1")
		os.Exit(1)
	}

	shapes := make([]float64, 0, *maxShape)
	setupMs := make([]float64, 0, *maxShape)
	randomizeMs := make([]float64, 0, *maxShape)
	verifyMs := make([]float64, 0, *maxShape)

	for shape := 1; shape <= *maxShape; shape++ {
		setup, randomize, verify, err := benchShape(shape, shape, *iterations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error benchmarking shape %dx%d: %v\n", shape, shape, err)
			os.Exit(1)
		}
		fmt.Printf("shape %2dx%-2d: setup=%-12s randomize=%-12s verify=%s\n", shape, shape, setup, randomize, verify)

		shapes = append(shapes, float64(shape))
		setupMs = append(setupMs, float64(setup.Microseconds())/1000)
		randomizeMs = append(randomizeMs, float64(randomize.Microseconds())/1000)
		verifyMs = append(verifyMs, float64(verify.Microseconds())/1000)
	}

	if err := renderChart(*output, shapes, setupMs, randomizeMs, verifyMs); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote latency chart to %s\n", *output)
}

// benchShape builds an m x n ProofSystem and times Setup, Randomize, and
// Verify, averaged over iterations.
func benchShape(m, n, iterations int) (setup, randomize, verify time.Duration, err error) {
	crs, err := gs.SetupBindingRand(rand.Reader)
	if err != nil {
		return 0, 0, 0, err
	}
	_, _, g1, g2 := bls12381.Generators()

	var setupTotal, randomizeTotal, verifyTotal time.Duration
	for i := 0; i < iterations; i++ {
		ay := make([]gs.AY, m)
		for j := 0; j < m; j++ {
			y, err := gs.NewVariableG2(rand.Reader, g2)
			if err != nil {
				return 0, 0, 0, err
			}
			ay[j] = gs.AY{A: g1, Y: y}
		}
		xb := make([]gs.XB, n)
		for k := 0; k < n; k++ {
			x, err := gs.NewVariableG1(rand.Reader, g1)
			if err != nil {
				return 0, 0, 0, err
			}
			xb[k] = gs.XB{X: x, B: g2}
		}
		gamma, err := gs.RandMatrix(rand.Reader, n, m)
		if err != nil {
			return 0, 0, 0, err
		}

		start := time.Now()
		ps, err := gs.Setup(rand.Reader, crs, ay, xb, gamma)
		setupTotal += time.Since(start)
		if err != nil {
			return 0, 0, 0, err
		}

		start = time.Now()
		if err := ps.Randomize(rand.Reader, crs); err != nil {
			return 0, 0, 0, err
		}
		randomizeTotal += time.Since(start)

		start = time.Now()
		if _, err := ps.Verify(crs); err != nil {
			return 0, 0, 0, err
		}
		verifyTotal += time.Since(start)
	}

	n64 := time.Duration(iterations)
	return setupTotal / n64, randomizeTotal / n64, verifyTotal / n64, nil
}

// renderChart draws setup/randomize/verify latency against equation shape
// and writes it to path as a PNG.
func renderChart(path string, shapes, setupMs, randomizeMs, verifyMs []float64) error {
	graph := chart.Chart{
		Title: "gs-ppe prove/verify latency by equation shape",
		XAxis: chart.XAxis{
			Name: "m = n",
		},
		YAxis: chart.YAxis{
			Name: "milliseconds",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Setup",
				XValues: shapes,
				YValues: setupMs,
			},
			chart.ContinuousSeries{
				Name:    "Randomize",
				XValues: shapes,
				YValues: randomizeMs,
			},
			chart.ContinuousSeries{
				Name:    "Verify",
				XValues: shapes,
				YValues: verifyMs,
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
