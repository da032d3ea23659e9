package main

// Plots the average velocity series written by a run, one point per time
// step.

import (
	"bufio"
	"fmt"
	"log"
	"os"

	plt "github.com/phil-mansfield/pyplot"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Usage: $ %s av_vels_file plot_file", os.Args[0])
	}

	xs, ys := readAvVels(os.Args[1])

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.XLabel("Step", plt.FontSize(16))
	plt.YLabel("Average velocity", plt.FontSize(16))
	plt.SaveFig(os.Args[2])
	plt.Execute()
}

func readAvVels(fname string) (xs, ys []float64) {
	f, err := os.Open(fname)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var (
			tt int
			v  float64
		)
		if _, err := fmt.Sscanf(scanner.Text(), "%d: %E", &tt, &v); err != nil {
			log.Fatal(err.Error())
		}
		xs = append(xs, float64(tt))
		ys = append(ys, v)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err.Error())
	}

	return xs, ys
}
