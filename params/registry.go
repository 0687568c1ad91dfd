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

// Registry is a view over the published fork set. Every registry recognizes
// the mainline Ethereum forks; the OP Stack band is only visible when
// Optimism is set, and lookups for forks outside the view behave as if the
// fork did not exist. Registries are immutable after construction, so the
// package level instances are safe to share.
type Registry struct {
	// Optimism registers the OP Stack forks. Without it their names and
	// ranks are unrecognized.
	Optimism bool
}

var (
	// MainnetRegistry recognizes the mainline Ethereum forks only.
	MainnetRegistry = &Registry{}

	// OptimismRegistry recognizes the OP Stack forks on top of mainline.
	OptimismRegistry = &Registry{Optimism: true}
)

// mainlineForks holds the mainline band in ascending rank order. Latest is
// kept out of the band tables and appended by Forks.
var mainlineForks = []Fork{
	Frontier, FrontierThawing, Homestead, DAOFork, Tangerine,
	SpuriousDragon, Byzantium, Constantinople, Petersburg, Istanbul,
	MuirGlacier, Berlin, London, ArrowGlacier, GrayGlacier, Merge,
	Shanghai, Cancun, Prague, Osaka,
}

// optimismForks holds the OP Stack band in ascending rank order.
var optimismForks = []Fork{Bedrock, Regolith}

// ParseFork resolves a canonical fork name within the registry. Unknown
// names, and names of forks outside the registry's view, resolve to Latest.
func (r *Registry) ParseFork(name string) Fork {
	fork, ok := forksByName[name]
	if !ok || !r.recognizes(fork) {
		return Latest
	}
	return fork
}

// ForkByID resolves a raw rank within the registry. The boolean reports
// whether the rank names a fork the registry recognizes.
func (r *Registry) ForkByID(id uint8) (Fork, bool) {
	fork := Fork(id)
	if _, ok := forkNames[fork]; !ok || !r.recognizes(fork) {
		return 0, false
	}
	return fork, true
}

// Forks returns every fork the registry recognizes in ascending rank order,
// ending with Latest. The slice is freshly allocated on each call.
func (r *Registry) Forks() []Fork {
	forks := make([]Fork, 0, len(mainlineForks)+len(optimismForks)+1)
	forks = append(forks, mainlineForks...)
	if r.Optimism {
		forks = append(forks, optimismForks...)
	}
	return append(forks, Latest)
}

func (r *Registry) recognizes(f Fork) bool {
	return r.Optimism || !f.IsOptimism()
}
