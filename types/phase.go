// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "strconv"

// Phase numbers a single instance of the propose/round1/round2/decide state
// machine. Phases advance monotonically and are never reused.
type Phase uint64

// GenesisPhase is the phase before any decision has been committed.
const GenesisPhase Phase = 0

// Successor returns the next phase.
func (p Phase) Successor() Phase { return p + 1 }

// Less reports whether p precedes other.
func (p Phase) Less(other Phase) bool { return p < other }

// IsEven reports whether the phase number is even, used by CoinFlip's
// deterministic fallback (bit 0 of the phase number).
func (p Phase) IsEven() bool { return p%2 == 0 }

func (p Phase) String() string { return strconv.FormatUint(uint64(p), 10) }
