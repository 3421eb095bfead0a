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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Input lines can hold a whole data set, so allow far more than bufio's
// 64KiB default.
const maxLineSize = 64 * 1024 * 1024

// ParseKeys converts a line of whitespace-separated integers. A blank line
// yields no keys.
func ParseKeys(line string) ([]int, error) {
	fields := strings.Fields(line)
	keys := make([]int, 0, len(fields))
	for i, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("token %d %q is not an integer: %w", i+1, f, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// readLines returns exactly n lines from r. Lines missing at the end of the
// input come back empty.
func readLines(r io.Reader, n int) ([]string, error) {
	lines := make([]string, n)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)
	for i := 0; i < n && scanner.Scan(); i++ {
		lines[i] = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// readAllKeys parses every whitespace-separated integer in r regardless of
// line breaks.
func readAllKeys(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var keys []int
	for scanner.Scan() {
		tok := scanner.Text()
		k, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d %q is not an integer: %w", len(keys)+1, tok, err)
		}
		keys = append(keys, k)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func readKeysFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return readAllKeys(file)
}

// openInput opens path for reading, "-" meaning stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s not found", path)
		}
		return nil, err
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// createOutput truncates or creates path, "-" meaning stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
