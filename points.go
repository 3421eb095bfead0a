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
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

var errOddCoordinates = errors.New("coordinates must come in x y pairs")

// distance truncates the euclidean distance of (x, y) from the origin.
func distance(x, y int) int {
	return int(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
}

// runPoints inserts the distance of every point in r into a tree. Every
// cfg.ReportEvery points, and after the last one, it reports the current
// min and max distances. After the last point it also reports the smallest
// distance among the last point's neighbours in the tree.
func runPoints(r io.Reader, w io.Writer, progress io.Writer, cfg PointsConfig) error {
	coords, err := readAllKeys(r)
	if err != nil {
		return fmt.Errorf("failed to read points input: %w", err)
	}
	if len(coords)%2 != 0 {
		return fmt.Errorf("%d values: %w", len(coords), errOddCoordinates)
	}

	total := len(coords) / 2
	every := cfg.ReportEvery
	if every <= 0 {
		every = defaultConfig.Points.ReportEvery
	}

	var bar *progressbar.ProgressBar
	if progress != nil && total > 0 {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("📍 Inserting points..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	tree := avl.NewOrdered[int]()
	var out []string
	last := 0
	for p := 1; p <= total; p++ {
		last = distance(coords[2*p-2], coords[2*p-1])
		tree.Insert(last)
		if bar != nil {
			_ = bar.Add(1)
		}

		if p%every == 0 || p == total {
			out = append(out,
				strconv.Itoa(tree.Min().Key()),
				strconv.Itoa(tree.Max().Key()))
		}
	}

	if total > 0 {
		out = append(out, smallestNeighbour(tree, last))
	}

	if _, err := io.WriteString(w, strings.Join(out, " ")); err != nil {
		return fmt.Errorf("failed to write points output: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"points":   total,
		"distinct": tree.Len(),
		"height":   tree.Height(),
	}).Debug("points finished")

	return nil
}

// smallestNeighbour returns the lowest key among the parent and children of
// key's node, or "null" when the node stands alone.
func smallestNeighbour(tree *avl.Tree[int], key int) string {
	node := tree.Find(key)
	best, found := 0, false
	for _, n := range []*avl.Node[int]{tree.Parent(key), node.Left(), node.Right()} {
		if n == nil {
			continue
		}
		if !found || n.Key() < best {
			best, found = n.Key(), true
		}
	}
	if !found {
		return nullKey
	}
	return strconv.Itoa(best)
}
