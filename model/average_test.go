// Copyright 2026 recore Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recore-io/recore/dataset"
)

const testDelta = 1e-5

func newTestTable() *dataset.Table {
	table := dataset.NewTable(3)
	table.Append(0, 1, 4)
	table.Append(1, 1, 2)
	table.Append(2, 2, 5)
	return table
}

func TestItemAverage(t *testing.T) {
	m := NewItemAverage()
	require.NoError(t, m.Train(newTestTable()))
	assert.InDelta(t, 3.0, m.Predict(1), testDelta)
	assert.InDelta(t, 5.0, m.Predict(2), testDelta)
	global, ok := m.GlobalAverage()
	assert.True(t, ok)
	assert.InDelta(t, 11.0/3.0, global, testDelta)
	// unseen entity falls back to the global average
	assert.True(t, m.CanPredict(2))
	assert.False(t, m.CanPredict(3))
	assert.InDelta(t, 11.0/3.0, m.Predict(100), testDelta)
	assert.False(t, m.CanPredict(-1))
	assert.InDelta(t, 11.0/3.0, m.Predict(-1), testDelta)
	// in-range entity with zero observations falls back too
	assert.True(t, m.CanPredict(0))
	assert.InDelta(t, 11.0/3.0, m.Predict(0), testDelta)
}

func TestUserAverage(t *testing.T) {
	m := NewUserAverage()
	require.NoError(t, m.Train(newTestTable()))
	assert.InDelta(t, 4.0, m.Predict(0), testDelta)
	assert.InDelta(t, 2.0, m.Predict(1), testDelta)
	assert.InDelta(t, 5.0, m.Predict(2), testDelta)
	assert.InDelta(t, 11.0/3.0, m.Predict(3), testDelta)
}

func TestTrainEmpty(t *testing.T) {
	assert.ErrorIs(t, NewItemAverage().Train(dataset.NewTable(0)), ErrGlobalAverageUndefined)
	assert.ErrorIs(t, NewUserAverage().Train(dataset.NewTable(0)), ErrGlobalAverageUndefined)
	assert.ErrorIs(t, NewGlobalAverage().Train(dataset.NewTable(0)), ErrGlobalAverageUndefined)
}

func TestIncrementalUpdate(t *testing.T) {
	m := NewItemAverage()
	require.NoError(t, m.Train(newTestTable()))
	m.Update(1, 6)
	// retrain from scratch on the extended table
	extended := newTestTable()
	extended.Append(1, 1, 6)
	retrained := NewItemAverage()
	require.NoError(t, retrained.Train(extended))
	assert.InDelta(t, retrained.Predict(1), m.Predict(1), testDelta)
	assert.InDelta(t, retrained.Predict(2), m.Predict(2), testDelta)
	expectedGlobal, _ := retrained.GlobalAverage()
	actualGlobal, _ := m.GlobalAverage()
	assert.InDelta(t, expectedGlobal, actualGlobal, testDelta)
}

func TestUpdateGrowsCoverage(t *testing.T) {
	m := NewItemAverage()
	require.NoError(t, m.Train(newTestTable()))
	assert.False(t, m.CanPredict(5))
	m.Update(5, 1)
	assert.True(t, m.CanPredict(5))
	assert.InDelta(t, 1.0, m.Predict(5), testDelta)
	// previously trained entities are untouched
	assert.InDelta(t, 3.0, m.Predict(1), testDelta)
}

func TestGlobalAverage(t *testing.T) {
	m := NewGlobalAverage()
	require.NoError(t, m.Train(newTestTable()))
	assert.InDelta(t, 11.0/3.0, m.Predict(0), testDelta)
	assert.InDelta(t, 11.0/3.0, m.Predict(42), testDelta)
	m.Update(1)
	assert.InDelta(t, 3.0, m.Predict(0), testDelta)
}
