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

// A small hashing framework for keys whose equality is structural rather than
// identity-based.  Collisions are handled gracefully using buckets, rather
// than assuming the hash function uniquely identifies the key.

// Hasher provides a generic definition of a hashing function suitable for use
// within the Map below.  It pairs a hashcode with an equality check, since
// hashcodes alone cannot distinguish colliding keys.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Fold combines a sequence of hashcodes into one using FNV1a.
func Fold(hashes ...uint64) uint64 {
	hash := offset64
	//
	for _, h := range hashes {
		hash ^= h
		hash *= prime64
	}
	//
	return hash
}

// FoldString folds the bytes of a string into a given hashcode using FNV1a.
func FoldString(hash uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		hash ^= uint64(s[i])
		hash *= prime64
	}
	//
	return hash
}
