// SPDX-License-Identifier: MIT

package basis

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// TileHash maps a tiling index and its discretised coordinates to a 64-bit
// hash. It is pure and deterministic across platforms: the inputs are
// encoded little-endian (8 bytes each, tiling first) and hashed with xxhash64.
func TileHash(tiling int, coords []int) uint64 {
	buf := make([]byte, 8*(len(coords)+1))

	return hashTile(buf, tiling, coords)
}

// hashTile is TileHash over a caller-owned scratch buffer of length
// 8*(len(coords)+1), letting Project reuse one buffer across tilings.
func hashTile(buf []byte, tiling int, coords []int) uint64 {
	binary.LittleEndian.PutUint64(buf, uint64(tiling))
	for k, q := range coords {
		binary.LittleEndian.PutUint64(buf[8*(k+1):], uint64(q))
	}

	return xxhash.Sum64(buf)
}

// hashSlot folds a hash into tiling t's partition of a hashed table.
// Partitions are disjoint, so distinct tilings never share a slot.
func hashSlot(h uint64, t, part int) int {
	return t*part + int(h%uint64(part))
}
