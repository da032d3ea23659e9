package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/phil-mansfield/d2q9"
	"github.com/phil-mansfield/d2q9/io"
)

const (
	finalStateFile = "final_state.dat"
	avVelsFile     = "av_vels.dat"
)

func main() {
	var (
		paramFile, obstacleFile string
		workers                 int
	)

	flag.StringVar(
		&paramFile, "Params", "",
		"Config file holding the [Params] section of the run.",
	)
	flag.StringVar(
		&obstacleFile, "Obstacles", "",
		"File listing the blocked cells, one 'x y 1' line per cell.",
	)
	flag.IntVar(
		&workers, "Workers", 0,
		"Number of workers the grid's rows are split across. Defaults to "+
			"the number of CPUs, capped at the row count.",
	)

	flag.Parse()

	if paramFile == "" {
		log.Fatal("Must supply a 'Params' file.")
	} else if obstacleFile == "" {
		log.Fatal("Must supply an 'Obstacles' file.")
	}

	par, err := io.ReadParams(paramFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	obst, err := io.ReadObstacles(obstacleFile, par.Nx, par.Ny)
	if err != nil {
		log.Fatal(err.Error())
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > par.Ny {
		workers = par.Ny
	}
	runtime.GOMAXPROCS(runtime.NumCPU())

	log.Printf(
		"Running %d steps of a %d x %d grid on %d workers.",
		par.MaxIters, par.Nx, par.Ny, workers,
	)

	tic := time.Now()
	cells, avVels := d2q9.Run(par, obst, workers)
	toc := time.Since(tic)

	fmt.Println("==done==")
	fmt.Printf("Reynolds number:\t\t%.12E\n", d2q9.Reynolds(par, cells, obst))
	fmt.Printf("Elapsed time:\t\t\t%.6f (s)\n", toc.Seconds())

	if err := io.WriteState(finalStateFile, par, cells, obst); err != nil {
		log.Fatal(err.Error())
	}
	if err := io.WriteAvVels(avVelsFile, avVels); err != nil {
		log.Fatal(err.Error())
	}
}
