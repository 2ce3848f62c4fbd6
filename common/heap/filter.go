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

package heap

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Elem is a weighted element.
type Elem[T any, W constraints.Ordered] struct {
	Value  T
	Weight W
}

type minHeap[T any, W constraints.Ordered] []Elem[T, W]

func (h minHeap[T, W]) Len() int {
	return len(h)
}

func (h minHeap[T, W]) Less(i, j int) bool {
	return h[i].Weight < h[j].Weight
}

func (h minHeap[T, W]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *minHeap[T, W]) Push(x any) {
	*h = append(*h, x.(Elem[T, W]))
}

func (h *minHeap[T, W]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopKFilter filters out the k elements with maximum weights.
type TopKFilter[T any, W constraints.Ordered] struct {
	heap minHeap[T, W]
	k    int
}

// NewTopKFilter creates a top k filter.
func NewTopKFilter[T any, W constraints.Ordered](k int) *TopKFilter[T, W] {
	return &TopKFilter[T, W]{k: k}
}

// Len returns the number of retained elements.
func (filter *TopKFilter[T, W]) Len() int {
	return filter.heap.Len()
}

// Push pushes an element onto the filter, evicting the lightest element once
// more than k are retained. The complexity is O(log k).
func (filter *TopKFilter[T, W]) Push(value T, weight W) {
	heap.Push(&filter.heap, Elem[T, W]{value, weight})
	if filter.heap.Len() > filter.k {
		heap.Pop(&filter.heap)
	}
}

// PopAll pops all retained values and weights in decreasing weight order.
func (filter *TopKFilter[T, W]) PopAll() ([]T, []W) {
	values := make([]T, filter.heap.Len())
	weights := make([]W, filter.heap.Len())
	for i := len(values) - 1; i >= 0; i-- {
		elem := heap.Pop(&filter.heap).(Elem[T, W])
		values[i], weights[i] = elem.Value, elem.Weight
	}
	return values, weights
}
