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
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/mattn/go-shellwords"
)

// splitCommand splits a command line into words, honouring quotes.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	return args, nil
}

func parseArgs(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one key")
	}
	return ParseKeys(strings.Join(args, " "))
}

// applyCommand runs one explorer command against tree and returns a short
// description of the outcome. A blank line does nothing.
func applyCommand(tree *avl.Tree[int], line string) (string, error) {
	args, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	name, rest := strings.ToLower(args[0]), args[1:]
	switch name {
	case "insert", "add", "i":
		keys, err := parseArgs(rest)
		if err != nil {
			return "", err
		}
		inserted := 0
		for _, k := range keys {
			if tree.Insert(k) {
				inserted++
			}
		}
		return fmt.Sprintf("inserted %d, ignored %d duplicate(s)", inserted, len(keys)-inserted), nil

	case "delete", "remove", "del", "d":
		keys, err := parseArgs(rest)
		if err != nil {
			return "", err
		}
		deleted := 0
		for _, k := range keys {
			if tree.Delete(k) {
				deleted++
			}
		}
		return fmt.Sprintf("deleted %d, %d not found", deleted, len(keys)-deleted), nil

	case "find", "f":
		keys, err := parseArgs(rest)
		if err != nil {
			return "", err
		}
		results := make([]string, len(keys))
		for i, k := range keys {
			results[i] = describeNode(tree, k)
		}
		return strings.Join(results, "; "), nil

	case "min", "max":
		node := tree.Min()
		if name == "max" {
			node = tree.Max()
		}
		if node == nil {
			return name + ": empty tree", nil
		}
		return fmt.Sprintf("%s: %d", name, node.Key()), nil

	case "range":
		keys, err := parseArgs(rest)
		if err != nil {
			return "", err
		}
		if len(keys) != 2 {
			return "", fmt.Errorf("range expects lo and hi, got %d key(s)", len(keys))
		}
		return fmt.Sprintf("range [%d, %d): %s", keys[0], keys[1], joinKeys(tree.Range(keys[0], keys[1]))), nil

	case "traverse", "order":
		if len(rest) != 1 {
			return "", fmt.Errorf("traverse expects one of pre, in, post")
		}
		order, err := avl.ParseOrder(rest[0])
		if err != nil {
			return "", err
		}
		var keys []int
		for k := range tree.All(order) {
			keys = append(keys, k)
		}
		return fmt.Sprintf("%s-order: %s", order, joinKeys(keys)), nil

	case "clear":
		n := tree.Len()
		tree.Clear()
		return fmt.Sprintf("cleared %d key(s)", n), nil

	case "load":
		if len(rest) != 1 {
			return "", fmt.Errorf("load expects a file path")
		}
		keys, err := readKeysFile(rest[0])
		if err != nil {
			return "", err
		}
		inserted := 0
		for _, k := range keys {
			if tree.Insert(k) {
				inserted++
			}
		}
		return fmt.Sprintf("loaded %d key(s) from %s", inserted, rest[0]), nil

	case "check":
		if err := tree.Check(); err != nil {
			return "", err
		}
		return "tree is a valid AVL tree", nil
	}

	return "", fmt.Errorf("unknown command %q", args[0])
}

func describeNode(tree *avl.Tree[int], key int) string {
	node := tree.Find(key)
	if node == nil {
		return fmt.Sprintf("%d: not found", key)
	}

	child := func(n *avl.Node[int]) string {
		if n == nil {
			return nullKey
		}
		return strconv.Itoa(n.Key())
	}
	parent := nullKey
	if p := tree.Parent(key); p != nil {
		parent = strconv.Itoa(p.Key())
	}
	return fmt.Sprintf("%d: parent=%s left=%s right=%s height=%d balance=%+d",
		key, parent, child(node.Left()), child(node.Right()), node.Height(), node.BalanceFactor())
}
