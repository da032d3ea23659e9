package io

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadObstacles(t *testing.T) {
	fname := writeTempFile(t, "1 2 1\n3 0 1\n")
	defer os.Remove(fname)

	mask, err := ReadObstacles(fname, 4, 4)
	assert.NoError(t, err)

	for jj := 0; jj < 4; jj++ {
		for ii := 0; ii < 4; ii++ {
			blocked := (ii == 1 && jj == 2) || (ii == 3 && jj == 0)
			assert.Equal(t, blocked, mask.At(ii, jj), "cell (%d, %d)", ii, jj)
		}
	}
}

func TestReadObstaclesRejectsBadFiles(t *testing.T) {
	table := []string{
		"9 0 1\n", // x out of range
		"0 9 1\n", // y out of range
		"0 0 2\n", // blocked value must be 1
	}

	for i, text := range table {
		fname := writeTempFile(t, text)
		defer os.Remove(fname)

		if _, err := ReadObstacles(fname, 4, 4); err == nil {
			t.Errorf("%d) Expected an error for obstacle file %q.", i, text)
		}
	}
}
