// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package round

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Block is a block hash paired with its number.
type Block[H comparable] struct {
	Hash   H      `json:"hash"`
	Number uint32 `json:"number"`
}

// NewBlock returns a pointer to a Block, for use in State fields.
func NewBlock[H comparable](hash H, number uint32) *Block[H] {
	return &Block[H]{Hash: hash, Number: number}
}

func (b *Block[H]) String() string {
	if b == nil {
		return "none"
	}
	return fmt.Sprintf("%v#%d", b.Hash, b.Number)
}

// State is a snapshot of a round. Once published a State and the blocks it
// points to are never modified.
type State[H comparable] struct {
	PrevoteGhost *Block[H] `json:"prevoteGhost"`
	Finalized    *Block[H] `json:"finalized"`
	Estimate     *Block[H] `json:"estimate"`
	Completable  bool      `json:"completable"`
}

// IsFinalized reports whether the round finalized a block.
func (s State[H]) IsFinalized() bool {
	return s.Finalized != nil
}

func (s State[H]) String() string {
	return fmt.Sprintf("ghost=%s finalized=%s estimate=%s completable=%t",
		s.PrevoteGhost, s.Finalized, s.Estimate, s.Completable)
}

// AsJSON describes the state for debugging purposes.
func (s State[H]) AsJSON() []byte {
	bytes, err := json.Marshal(s)
	if err != nil {
		log.Panicf("Failed to marshall round state: %s", err)
	}
	return bytes
}
