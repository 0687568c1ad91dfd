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

import "fmt"

// Fork is the numeric identifier of a protocol rule set (hardfork).
// Identifiers are ordered: a larger rank activates strictly later than a
// smaller one, so rule checks reduce to integer comparisons. Mainline
// Ethereum forks occupy ranks 0-127, the OP Stack forks ranks 128-254,
// and Latest is the terminal rank above both bands.
type Fork uint8

// Mainline Ethereum hardforks in activation order. Trailing comments carry
// the mainnet activation block of each fork.
const (
	Frontier        Fork = 0  // Frontier            0
	FrontierThawing Fork = 1  // Frontier Thawing    200000
	Homestead       Fork = 2  // Homestead           1150000
	DAOFork         Fork = 3  // DAO Fork            1920000
	Tangerine       Fork = 4  // Tangerine Whistle   2463000
	SpuriousDragon  Fork = 5  // Spurious Dragon     2675000
	Byzantium       Fork = 6  // Byzantium           4370000
	Constantinople  Fork = 7  // Constantinople      7280000 (replaced in the same block by Petersburg)
	Petersburg      Fork = 8  // Petersburg          7280000
	Istanbul        Fork = 9  // Istanbul            9069000
	MuirGlacier     Fork = 10 // Muir Glacier        9200000
	Berlin          Fork = 11 // Berlin              12244000
	London          Fork = 12 // London              12965000
	ArrowGlacier    Fork = 13 // Arrow Glacier       13773000
	GrayGlacier     Fork = 14 // Gray Glacier        15050000
	Merge           Fork = 15 // Merge (Paris)       15537394
	Shanghai        Fork = 16 // Shanghai            17034870
	Cancun          Fork = 17 // Cancun              19426587
	Prague          Fork = 18 // Prague (Pectra)     22431084
	Osaka           Fork = 19 // Osaka (Fusaka)
)

// OP Stack hardforks. The band starts at 128, well clear of the mainline
// ranks, and branches off mainline history right after the Merge.
const (
	Bedrock  Fork = 128 // Bedrock             105235063 (OP mainnet)
	Regolith Fork = 129 // Regolith            activated together with Bedrock
)

// Latest is the terminal identifier. It always denotes the newest supported
// rule set and compares at or above every published fork in either band.
const Latest Fork = 255

// forkNames maps every published fork to its canonical name. The table is
// bijective, so parsing inverts String over the whole published set.
var forkNames = map[Fork]string{
	Frontier:        "Frontier",
	FrontierThawing: "FrontierThawing",
	Homestead:       "Homestead",
	DAOFork:         "DAOFork",
	Tangerine:       "Tangerine",
	SpuriousDragon:  "SpuriousDragon",
	Byzantium:       "Byzantium",
	Constantinople:  "Constantinople",
	Petersburg:      "Petersburg",
	Istanbul:        "Istanbul",
	MuirGlacier:     "MuirGlacier",
	Berlin:          "Berlin",
	London:          "London",
	ArrowGlacier:    "ArrowGlacier",
	GrayGlacier:     "GrayGlacier",
	Merge:           "Merge",
	Shanghai:        "Shanghai",
	Cancun:          "Cancun",
	Prague:          "Prague",
	Osaka:           "Osaka",
	Bedrock:         "Bedrock",
	Regolith:        "Regolith",
	Latest:          "Latest",
}

// forksByName is the inverse of forkNames, populated at init.
var forksByName = make(map[string]Fork, len(forkNames))

func init() {
	for fork, name := range forkNames {
		forksByName[name] = fork
	}
}

// IsOptimism reports whether f sits in the OP Stack band.
func (f Fork) IsOptimism() bool {
	return f >= Bedrock && f < Latest
}

// String returns the canonical fork name, or unknown(rank) for ranks
// outside the published set.
func (f Fork) String() string {
	if name, ok := forkNames[f]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Fork) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// exactly against the canonical table; unknown names decode to Latest
// rather than failing.
func (f *Fork) UnmarshalText(text []byte) error {
	fork, ok := forksByName[string(text)]
	if !ok {
		fork = Latest
	}
	*f = fork
	return nil
}
