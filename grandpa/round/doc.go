// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package round defines the round state snapshot bridged between consecutive
// rounds and the waits a subsequent round performs on its predecessor.
package round
