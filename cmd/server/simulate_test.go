package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimulation(t *testing.T) {
	simPatron, simTurns, simSeed = "okawaru", 10, 3
	simSpecies, simClass, simGold, simPiety = "human", "fighter", 0, 3

	var out bytes.Buffer
	require.NoError(t, runSimulation(context.Background(), &out))
	assert.Contains(t, out.String(), "Okawaru welcomes you!")
	assert.Contains(t, out.String(), "Okawaru: piety")
}

func TestRunSimulationRefused(t *testing.T) {
	simPatron, simTurns, simSeed = "beogh", 1, 3
	simSpecies, simClass, simGold, simPiety = "human", "fighter", 0, 3

	var out bytes.Buffer
	err := runSimulation(context.Background(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_orcish")
}

func TestRunSimulationUnknownPatron(t *testing.T) {
	simPatron, simTurns = "nobody", 1

	var out bytes.Buffer
	assert.Error(t, runSimulation(context.Background(), &out))
}
