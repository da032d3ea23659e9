/*package io reads run configuration and obstacle files and writes the
final state of a run.*/
package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/d2q9"
)

// ParamsConfig mirrors the [Params] section of a run's config file.
type ParamsConfig struct {
	Nx, Ny      int
	MaxIters    int
	ReynoldsDim int
	Density     float64
	Accel       float64
	Omega       float64
}

// ParamsWrapper is the struct gcfg parses a config file into.
type ParamsWrapper struct {
	Params ParamsConfig
}

func DefaultParamsWrapper() *ParamsWrapper {
	return &ParamsWrapper{}
}

func (con *ParamsConfig) CheckInit() error {
	if con.Nx <= 0 {
		return fmt.Errorf("Need to specify a positive 'Nx' value.")
	} else if con.Ny < 2 {
		// The accelerated row sits at Ny - 2.
		return fmt.Errorf("Need to specify an 'Ny' value of at least 2.")
	} else if con.MaxIters <= 0 {
		return fmt.Errorf("Need to specify a positive 'MaxIters' value.")
	} else if con.ReynoldsDim <= 0 {
		return fmt.Errorf("Need to specify a positive 'ReynoldsDim' value.")
	}

	if con.Density <= 0 {
		return fmt.Errorf("Need to specify a positive 'Density' value.")
	} else if con.Accel < 0 {
		return fmt.Errorf("'Accel' value must not be negative.")
	} else if con.Omega <= 0 {
		return fmt.Errorf("Need to specify a positive 'Omega' value.")
	}

	return nil
}

// ReadParams reads and validates the [Params] section of the given config
// file.
func ReadParams(fname string) (*d2q9.Params, error) {
	wrap := DefaultParamsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Params
	if err := con.CheckInit(); err != nil {
		return nil, err
	}

	return &d2q9.Params{
		Nx:          con.Nx,
		Ny:          con.Ny,
		MaxIters:    con.MaxIters,
		ReynoldsDim: con.ReynoldsDim,
		Density:     float32(con.Density),
		Accel:       float32(con.Accel),
		Omega:       float32(con.Omega),
	}, nil
}
