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

// Package model implements baseline rating predictors backed by running
// per-entity statistics.
package model

import (
	"time"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/recore-io/recore/base/log"
	"github.com/recore-io/recore/dataset"
)

// ErrGlobalAverageUndefined is returned when training runs on zero ratings,
// leaving the global average without a value.
var ErrGlobalAverageUndefined = errors.New("global average is undefined on an empty training set")

// EntityAverage predicts a rating as the historical mean of one entity axis
// (users or items), falling back to the global mean for entities outside the
// observed id range. Per-entity state is a running (sum, count) pair, so a
// new observation folds in without rescanning history.
//
// Prediction is safe for concurrent readers once training completes. Update
// mutates shared state and requires a single-writer discipline imposed by the
// caller; the predictor performs no internal locking.
type EntityAverage struct {
	sums        []float32
	counts      []int32
	globalSum   float32
	globalCount int64
}

// Train accumulates per-entity and global statistics in a single pass over
// parallel id and value columns. ids beyond maxID grow the table. Training
// an empty set returns ErrGlobalAverageUndefined.
func (e *EntityAverage) Train(ids []int32, values []float32, maxID int32) error {
	if len(values) == 0 {
		return ErrGlobalAverageUndefined
	}
	e.sums = make([]float32, maxID+1)
	e.counts = make([]int32, maxID+1)
	e.globalSum = 0
	e.globalCount = 0
	for i := range values {
		e.Update(ids[i], values[i])
	}
	return nil
}

// CanPredict reports whether id falls inside the observed id range. This is
// a coverage check: an in-range entity with no observations still predicts
// through the global fallback.
func (e *EntityAverage) CanPredict(id int32) bool {
	return id >= 0 && int(id) < len(e.counts)
}

// Predict returns the entity's mean rating, or the global mean when the
// entity is outside the observed range or has no observations.
func (e *EntityAverage) Predict(id int32) float32 {
	if e.CanPredict(id) && e.counts[id] > 0 {
		return e.sums[id] / float32(e.counts[id])
	}
	global, _ := e.GlobalAverage()
	return global
}

// Update folds one rating into the entity's and the global running
// statistics in O(1). An id beyond the current range grows the table.
func (e *EntityAverage) Update(id int32, value float32) {
	if int(id) >= len(e.counts) {
		sums := make([]float32, id+1)
		counts := make([]int32, id+1)
		copy(sums, e.sums)
		copy(counts, e.counts)
		e.sums = sums
		e.counts = counts
	}
	e.sums[id] += value
	e.counts[id]++
	e.globalSum += value
	e.globalCount++
}

// GlobalAverage returns the mean over all observed ratings. The second
// return value is false before any rating has been observed.
func (e *EntityAverage) GlobalAverage() (float32, bool) {
	if e.globalCount == 0 {
		return 0, false
	}
	return e.globalSum / float32(e.globalCount), true
}

// ItemAverage is the entity-average baseline keyed by item id.
type ItemAverage struct {
	EntityAverage
}

// NewItemAverage creates an untrained item-average predictor.
func NewItemAverage() *ItemAverage {
	return new(ItemAverage)
}

// Train fits the predictor on all ratings of a table.
func (m *ItemAverage) Train(table *dataset.Table) error {
	start := time.Now()
	if err := m.EntityAverage.Train(table.Items(), table.Values(), table.MaxItemID()); err != nil {
		return errors.Trace(err)
	}
	log.Logger().Info("trained item average",
		zap.Int("ratings", table.Count()),
		zap.Int32("max_item_id", table.MaxItemID()),
		zap.Duration("fit_time", time.Since(start)))
	return nil
}

// UserAverage is the entity-average baseline keyed by user id.
type UserAverage struct {
	EntityAverage
}

// NewUserAverage creates an untrained user-average predictor.
func NewUserAverage() *UserAverage {
	return new(UserAverage)
}

// Train fits the predictor on all ratings of a table.
func (m *UserAverage) Train(table *dataset.Table) error {
	start := time.Now()
	if err := m.EntityAverage.Train(table.Users(), table.Values(), table.MaxUserID()); err != nil {
		return errors.Trace(err)
	}
	log.Logger().Info("trained user average",
		zap.Int("ratings", table.Count()),
		zap.Int32("max_user_id", table.MaxUserID()),
		zap.Duration("fit_time", time.Since(start)))
	return nil
}

// GlobalAverage is the degenerate baseline returning the mean of all
// observed ratings for every entity.
type GlobalAverage struct {
	sum   float32
	count int64
}

// NewGlobalAverage creates an untrained global-average predictor.
func NewGlobalAverage() *GlobalAverage {
	return new(GlobalAverage)
}

// Train computes the mean over all ratings of a table.
func (m *GlobalAverage) Train(table *dataset.Table) error {
	if table.Count() == 0 {
		return ErrGlobalAverageUndefined
	}
	m.sum = 0
	m.count = 0
	table.ForEach(func(_, _ int32, value float32) {
		m.sum += value
		m.count++
	})
	return nil
}

// Update folds one rating into the running mean in O(1).
func (m *GlobalAverage) Update(value float32) {
	m.sum += value
	m.count++
}

// Predict returns the global mean regardless of the entity.
func (m *GlobalAverage) Predict(int32) float32 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float32(m.count)
}
