// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// statesEqual compares two states by value rather than by block pointers.
func statesEqual[H comparable](a, b State[H]) bool {
	return blockEqual(a.PrevoteGhost, b.PrevoteGhost) &&
		blockEqual(a.Finalized, b.Finalized) &&
		blockEqual(a.Estimate, b.Estimate) &&
		a.Completable == b.Completable
}

func blockEqual[H comparable](a, b *Block[H]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestIsFinalized(t *testing.T) {
	assert.False(t, State[string]{}.IsFinalized())
	assert.True(t, State[string]{Finalized: NewBlock("1", 1)}.IsFinalized())
}

func TestStateString(t *testing.T) {
	s := State[string]{Estimate: NewBlock("3", 3)}
	assert.Equal(t, "ghost=none finalized=none estimate=3#3 completable=false", s.String())
}

func TestStateAsJSON(t *testing.T) {
	s := State[string]{
		PrevoteGhost: NewBlock("5", 5),
		Completable:  true,
	}
	assert.JSONEq(t,
		`{"prevoteGhost":{"hash":"5","number":5},"finalized":null,"estimate":null,"completable":true}`,
		string(s.AsJSON()))
}
