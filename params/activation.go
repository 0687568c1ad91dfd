// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package params

// Active reports whether the rule set introduced by fork is live for a
// chain running at current. Rule sets accumulate, so the check is a rank
// comparison, with one exception: the OP Stack band branches off mainline
// history right after the Merge, so mainline forks past the Merge are
// never active under an OP Stack current, whatever their rank.
func Active(current, fork Fork) bool {
	if current.IsOptimism() && !fork.IsOptimism() && fork > Merge {
		return false
	}
	return current >= fork
}

// Rules wraps the current fork and is merely syntactic sugar over Active.
// It is a one time value: derive it when an execution context is set up
// and do not carry it across a fork boundary.
type Rules struct {
	Fork Fork
}

// Active reports whether fork's rule set applies under r.
func (r Rules) Active(fork Fork) bool {
	return Active(r.Fork, fork)
}

// Per fork Rules bindings, one for every fork that changed EVM semantics.
// Difficulty bomb delays and the DAO recovery changed no execution rules,
// and Constantinople never ran alone (Petersburg replaced it in the same
// block), so none of those get a binding.
var (
	FrontierRules       = Rules{Frontier}
	HomesteadRules      = Rules{Homestead}
	TangerineRules      = Rules{Tangerine}
	SpuriousDragonRules = Rules{SpuriousDragon}
	ByzantiumRules      = Rules{Byzantium}
	PetersburgRules     = Rules{Petersburg}
	IstanbulRules       = Rules{Istanbul}
	BerlinRules         = Rules{Berlin}
	LondonRules         = Rules{London}
	MergeRules          = Rules{Merge}
	ShanghaiRules       = Rules{Shanghai}
	CancunRules         = Rules{Cancun}
	PragueRules         = Rules{Prague}
	OsakaRules          = Rules{Osaka}
	LatestRules         = Rules{Latest}

	BedrockRules  = Rules{Bedrock}
	RegolithRules = Rules{Regolith}
)
