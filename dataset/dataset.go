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

// Package dataset holds rating triples in columnar form and derives the
// per-entity views consumed by correlation builders and baseline predictors.
package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/recore-io/recore/base/log"
)

// Table is an immutable-once-built set of (user, item, value) rating triples.
// Ids on both axes are assumed to be small non-negative integers.
type Table struct {
	users  []int32
	items  []int32
	values []float32
}

// NewTable creates an empty rating table with capacity for count triples.
func NewTable(count int) *Table {
	return &Table{
		users:  make([]int32, 0, count),
		items:  make([]int32, 0, count),
		values: make([]float32, 0, count),
	}
}

// Append adds one rating triple.
func (t *Table) Append(userID, itemID int32, value float32) {
	t.users = append(t.users, userID)
	t.items = append(t.items, itemID)
	t.values = append(t.values, value)
}

// Count returns the number of triples.
func (t *Table) Count() int {
	return len(t.values)
}

// Users returns the user id column.
func (t *Table) Users() []int32 {
	return t.users
}

// Items returns the item id column.
func (t *Table) Items() []int32 {
	return t.items
}

// Values returns the rating value column.
func (t *Table) Values() []float32 {
	return t.values
}

// MaxUserID returns the maximum observed user id, or -1 on an empty table.
func (t *Table) MaxUserID() int32 {
	if len(t.users) == 0 {
		return -1
	}
	return lo.Max(t.users)
}

// MaxItemID returns the maximum observed item id, or -1 on an empty table.
func (t *Table) MaxItemID() int32 {
	if len(t.items) == 0 {
		return -1
	}
	return lo.Max(t.items)
}

// ForEach visits every triple in insertion order.
func (t *Table) ForEach(f func(userID, itemID int32, value float32)) {
	for i := range t.values {
		f(t.users[i], t.items[i], t.values[i])
	}
}

// UserSets returns, for each user id up to MaxUserID, the ids of the items
// the user rated, in insertion order.
func (t *Table) UserSets() [][]int32 {
	sets := make([][]int32, t.MaxUserID()+1)
	for i := range t.users {
		sets[t.users[i]] = append(sets[t.users[i]], t.items[i])
	}
	return sets
}

// ItemSets returns, for each item id up to MaxItemID, the ids of the users
// who rated the item, in insertion order.
func (t *Table) ItemSets() [][]int32 {
	sets := make([][]int32, t.MaxItemID()+1)
	for i := range t.items {
		sets[t.items[i]] = append(sets[t.items[i]], t.users[i])
	}
	return sets
}

// LoadCSV reads rating triples from a delimited text file with the layout
// userId<sep>itemId<sep>value. Lines with fewer than three fields are
// rejected. The format carries no compatibility guarantee.
func LoadCSV(path, sep string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	table := NewTable(0)
	start := time.Now()
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, sep)
		if len(fields) < 3 {
			return nil, errors.Errorf("%s:%d: expect at least 3 fields, got %d", path, line, len(fields))
		}
		userID, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, errors.Annotatef(err, "%s:%d", path, line)
		}
		itemID, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Annotatef(err, "%s:%d", path, line)
		}
		value, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, errors.Annotatef(err, "%s:%d", path, line)
		}
		table.Append(int32(userID), int32(itemID), float32(value))
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Info("loaded ratings",
		zap.String("path", path),
		zap.Int("count", table.Count()),
		zap.Duration("load_time", time.Since(start)))
	return table, nil
}
