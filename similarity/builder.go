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
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/recore-io/recore/base/log"
	"github.com/recore-io/recore/common/heap"
	"github.com/recore-io/recore/matrix"
)

// Build computes the pairwise correlation matrix over len(entities) entities.
// entities maps each entity to the ids of its observed members (for item-item
// correlation: the users who rated the item) and members is the inverted
// index on the other axis. Both are sorted in place. The result is an
// n x n matrix with scores[i][j] holding the correlation between entities
// i and j; the diagonal is left at zero.
//
// For a symmetric strategy each pair is computed once and mirrored. For an
// asymmetric strategy both orientations are derived from the same overlap
// count with swapped marginals.
func Build(strategy Binary, entities, members [][]int32) (*matrix.Matrix[float32], error) {
	n := len(entities)
	scores, err := matrix.New[float32](n, n)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for i := range entities {
		sort.Slice(entities[i], func(a, b int) bool { return entities[i][a] < entities[i][b] })
	}
	// Candidate plan: enumerate every pair on dense data, walk the inverted
	// index on sparse data so unrelated pairs are never visited.
	var interactions int
	for i := range entities {
		interactions += len(entities[i])
	}
	var sparse bool
	if len(members) > 0 && n > 0 {
		sparse = interactions*interactions/len(members)/n <= n
	}
	start := time.Now()
	for i := 0; i < n; i++ {
		var neighbors []int
		if sparse {
			neighborSet := mapset.NewThreadUnsafeSet[int]()
			for _, memberID := range entities[i] {
				for _, entityID := range members[memberID] {
					neighborSet.Add(int(entityID))
				}
			}
			neighbors = neighborSet.ToSlice()
		} else {
			neighbors = lo.Range(n)
		}
		for _, j := range neighbors {
			if j >= i {
				continue
			}
			overlap := float32(intersect(entities[i], entities[j]))
			countI := float32(len(entities[i]))
			countJ := float32(len(entities[j]))
			score := strategy.FromOverlap(overlap, countI, countJ)
			if err := scores.Set(i, j, score); err != nil {
				return nil, errors.Trace(err)
			}
			mirrored := score
			if !strategy.IsSymmetric() {
				mirrored = strategy.FromOverlap(overlap, countJ, countI)
			}
			if err := scores.Set(j, i, mirrored); err != nil {
				return nil, errors.Trace(err)
			}
		}
	}
	log.Logger().Info("built correlation matrix",
		zap.Int("entities", n),
		zap.Bool("sparse", sparse),
		zap.Duration("build_time", time.Since(start)))
	return scores, nil
}

// intersect counts the shared values of two sorted id lists.
func intersect(a, b []int32) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == b[j] {
			count++
			i++
			j++
		} else if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return count
}

// Neighbors returns the ids and scores of the k nearest neighbors of entity i
// in a correlation matrix, ordered by decreasing score. The entity itself is
// excluded.
func Neighbors(scores *matrix.Matrix[float32], i, k int) ([]int, []float32, error) {
	row, err := scores.Row(i)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	filter := heap.NewTopKFilter[int, float32](k)
	for j, score := range row {
		if j != i {
			filter.Push(j, score)
		}
	}
	ids, weights := filter.PopAll()
	return ids, weights, nil
}
