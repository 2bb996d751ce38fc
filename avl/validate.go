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

package avl

import "github.com/pkg/errors"

// ErrInvariant is wrapped by every error returned from Validate.
var ErrInvariant = errors.New("avl invariant violated")

// Validate walks the whole tree and checks the cached heights, the balance
// of every node, the key ordering and the key count. It returns nil for a
// well formed tree.
func (t *Tree) Validate() error {
	count := 0
	if _, err := validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrInvariant, "tree holds %d keys but size is %d", count, t.size)
	}
	return nil
}

// validate returns the real height of node. lo and hi are exclusive bounds
// inherited from the ancestors, nil when unbounded.
func validate(node *Node, lo, hi *int, count *int) (int, error) {
	if node == nil {
		return 0, nil
	}
	*count++

	if lo != nil && node.Key <= *lo {
		return 0, errors.Wrapf(ErrInvariant, "key %d is not greater than ancestor %d", node.Key, *lo)
	}
	if hi != nil && node.Key >= *hi {
		return 0, errors.Wrapf(ErrInvariant, "key %d is not less than ancestor %d", node.Key, *hi)
	}

	left, err := validate(node.Left, lo, &node.Key, count)
	if err != nil {
		return 0, err
	}
	right, err := validate(node.Right, &node.Key, hi, count)
	if err != nil {
		return 0, err
	}

	h := max(left, right) + 1
	if node.Height != h {
		return 0, errors.Wrapf(ErrInvariant, "node %d caches height %d, actual %d", node.Key, node.Height, h)
	}
	if diff := left - right; diff > 1 || diff < -1 {
		return 0, errors.Wrapf(ErrInvariant, "node %d has balance factor %d", node.Key, diff)
	}
	return h, nil
}
