// Copyright the go-gat authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"fmt"
	"strings"
)

// Map defines a generic map implementation keyed by structural hash.  This is
// a true hashtable in that colliding keys are kept in buckets, rather than
// simply discarded.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to *buckets* of entries.
	buckets map[uint64]mapBucket[K, V]
}

// NewMap creates a new Map with a given initial capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	buckets := make(map[uint64]mapBucket[K, V], size)
	return &Map[K, V]{buckets}
}

// Size returns the number of unique keys stored in this map.
func (p *Map[K, V]) Size() uint {
	count := uint(0)
	for _, b := range p.buckets {
		count += b.size()
	}
	//
	return count
}

// Insert a new entry into this map, returning true if the key was already
// present and false otherwise.
func (p *Map[K, V]) Insert(key K, value V) bool {
	// Compute key's hashcode
	hash := key.Hash()
	// Lookup existing bucket
	bucket := p.buckets[hash]
	// Insert new entry
	r := bucket.insert(key, value)
	// Update map
	p.buckets[hash] = bucket
	// Done
	return r
}

// ContainsKey checks whether the given key is contained within this map.
func (p *Map[K, V]) ContainsKey(key K) bool {
	if bucket, ok := p.buckets[key.Hash()]; ok {
		return bucket.containsKey(key)
	}
	//
	return false
}

// Get the value associated with a given key, or return false otherwise.
func (p *Map[K, V]) Get(key K) (V, bool) {
	// Look for bucket
	if bucket, ok := p.buckets[key.Hash()]; ok {
		return bucket.get(key)
	}
	//
	var empty V
	//
	return empty, false
}

// Each applies a given function to every key-value pair in this map.  The
// order in which entries are visited is unspecified.
func (p *Map[K, V]) Each(fn func(K, V)) {
	for _, b := range p.buckets {
		for i, k := range b.keys {
			fn(k, b.values[i])
		}
	}
}

func (p *Map[K, V]) String() string {
	var r strings.Builder
	//
	first := true
	// Write opening brace
	r.WriteString("{")
	// Iterate all buckets
	for _, b := range p.buckets {
		for i, k := range b.keys {
			if !first {
				r.WriteString(",")
			}
			//
			first = false
			//
			r.WriteString(fmt.Sprintf("%s:=%v", any(k), b.values[i]))
		}
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type mapBucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

// Get the number of entries in this bucket.
func (b *mapBucket[K, V]) size() uint {
	return uint(len(b.keys))
}

// Insert a new entry into this bucket.
func (b *mapBucket[K, V]) insert(key K, value V) bool {
	// Determine whether key already present
	for i, k := range b.keys {
		if key.Equals(k) {
			b.values[i] = value
			return true
		}
	}
	// Append entry
	b.keys = append(b.keys, key)
	b.values = append(b.values, value)
	// Key not present
	return false
}

// Check whether this bucket contains a given key, or not.
func (b *mapBucket[K, V]) containsKey(key K) bool {
	for _, k := range b.keys {
		if key.Equals(k) {
			return true
		}
	}
	//
	return false
}

// Get entry from bucket, or return false otherwise.
func (b *mapBucket[K, V]) get(key K) (V, bool) {
	var empty V
	//
	for i, k := range b.keys {
		if key.Equals(k) {
			return b.values[i], true
		}
	}
	//
	return empty, false
}
