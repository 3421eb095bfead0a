// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/sirupsen/logrus"
	"github.com/willf/bloom"
)

const nullKey = "null"

type QueryStats struct {
	Inserted       int
	Duplicates     int
	Deleted        int
	MissingDeletes int
	Finds          int
	Prefiltered    int // finds answered by the bloom filter alone
}

// runQuery reads three lines from r (keys to insert, keys to delete, keys to
// find) and writes, for every key to find, the key of its right child or
// "null" when the key is absent or has no right child.
func runQuery(r io.Reader, w io.Writer, cfg QueryConfig) (QueryStats, error) {
	var stats QueryStats

	lines, err := readLines(r, 3)
	if err != nil {
		return stats, fmt.Errorf("failed to read query input: %w", err)
	}

	var sections [3][]int
	for i, line := range lines {
		keys, err := ParseKeys(line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", i+1, err)
		}
		sections[i] = keys
	}
	toInsert, toDelete, toFind := sections[0], sections[1], sections[2]

	tree := avl.NewOrdered[int]()
	// Keys that were never inserted can skip the descent. Deleted keys stay
	// in the filter and fall through to the tree.
	seen := bloom.NewWithEstimates(uint(max(len(toInsert), 1)), cfg.FalsePositiveRate)

	for _, k := range toInsert {
		if tree.Insert(k) {
			stats.Inserted++
			seen.AddString(strconv.Itoa(k))
		} else {
			stats.Duplicates++
		}
	}

	for _, k := range toDelete {
		if tree.Delete(k) {
			stats.Deleted++
		} else {
			stats.MissingDeletes++
		}
	}

	results := make([]string, 0, len(toFind))
	for _, k := range toFind {
		stats.Finds++
		if !seen.TestString(strconv.Itoa(k)) {
			stats.Prefiltered++
			results = append(results, nullKey)
			continue
		}
		results = append(results, rightChildOf(tree, k))
	}

	if _, err := io.WriteString(w, strings.Join(results, " ")); err != nil {
		return stats, fmt.Errorf("failed to write query output: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"inserted":        stats.Inserted,
		"duplicates":      stats.Duplicates,
		"deleted":         stats.Deleted,
		"missing_deletes": stats.MissingDeletes,
		"finds":           stats.Finds,
		"prefiltered":     stats.Prefiltered,
		"height":          tree.Height(),
	}).Debug("query finished")

	return stats, nil
}

func rightChildOf(tree *avl.Tree[int], key int) string {
	right := tree.Find(key).Right()
	if right == nil {
		return nullKey
	}
	return strconv.Itoa(right.Key())
}
