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

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recore-io/recore/dataset"
)

func newTestTable() *dataset.Table {
	table := dataset.NewTable(5)
	table.Append(0, 1, 4)
	table.Append(0, 2, 3)
	table.Append(1, 1, 2)
	table.Append(1, 2, 5)
	table.Append(2, 0, 1)
	return table
}

func TestBuildJaccard(t *testing.T) {
	table := newTestTable()
	scores, err := Build(Jaccard{}, table.ItemSets(), table.UserSets())
	require.NoError(t, err)
	assert.Equal(t, 3, scores.Rows())
	assert.Equal(t, 3, scores.Columns())
	// items 1 and 2 share both raters
	v, err := scores.At(1, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, v, simTestDelta)
	// item 0 shares no rater with item 1
	v, err = scores.At(0, 1)
	assert.NoError(t, err)
	assert.Zero(t, v)
	// the diagonal is untouched
	v, err = scores.At(1, 1)
	assert.NoError(t, err)
	assert.Zero(t, v)
	assert.True(t, scores.IsSymmetric())
}

func TestBuildAsymmetric(t *testing.T) {
	table := newTestTable()
	// a third rater of item 1 makes the marginals unequal
	table.Append(2, 1, 3)
	scores, err := Build(ConditionalProbability{}, table.ItemSets(), table.UserSets())
	require.NoError(t, err)
	// P(2|1) = 2/3, P(1|2) = 2/2
	v, err := scores.At(1, 2)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, v, simTestDelta)
	v, err = scores.At(2, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, v, simTestDelta)
	assert.False(t, scores.IsSymmetric())
}

func TestBuildEmpty(t *testing.T) {
	scores, err := Build(Jaccard{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, scores.Rows())
}

func TestNeighbors(t *testing.T) {
	table := newTestTable()
	scores, err := Build(Jaccard{}, table.ItemSets(), table.UserSets())
	require.NoError(t, err)
	ids, weights, err := Neighbors(scores, 1, 2)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, 2, ids[0])
	assert.InDelta(t, 1.0, weights[0], simTestDelta)
	assert.Zero(t, weights[1])
	// out of range
	_, _, err = Neighbors(scores, 5, 2)
	assert.Error(t, err)
}
