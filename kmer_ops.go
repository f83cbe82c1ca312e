/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package nucseq

/* -------------------------------------------------------------------------- */

import "math/bits"

/* -------------------------------------------------------------------------- */

// nucleotideReverse reverses the order of the 32 2-bit fields of a
// 64-bit word. The bits within each field keep their order.
func nucleotideReverse(x uint64) uint64 {
  x = (x >>  2 & 0x3333333333333333) | (x & 0x3333333333333333) <<  2
  x = (x >>  4 & 0x0F0F0F0F0F0F0F0F) | (x & 0x0F0F0F0F0F0F0F0F) <<  4
  x = (x >>  8 & 0x00FF00FF00FF00FF) | (x & 0x00FF00FF00FF00FF) <<  8
  x = (x >> 16 & 0x0000FFFF0000FFFF) | (x & 0x0000FFFF0000FFFF) << 16
  x = (x >> 32)                      | (x                     ) << 32
  return x
}

/* -------------------------------------------------------------------------- */

// Reverse returns the k-mer with its symbols in reverse order. The
// payload is reversed as a full word of 32 2-bit fields; the shift by
// 2*(32-k) re-aligns the k reversed symbols to the low bits and clears
// the padding.
func (obj PackedKmer) Reverse() PackedKmer {
  return PackedKmer{
    code: nucleotideReverse(obj.code) >> uint(2*(MaxKmerLength-obj.k)),
    k   : obj.k,
    al  : obj.al }
}

// Complement returns the k-mer with every symbol complemented. Since
// the coded complement of every concrete symbol is the bitwise
// complement of its 2-bit code, complementing the payload and masking
// to the low 2k bits complements all symbols at once.
func (obj PackedKmer) Complement() PackedKmer {
  return PackedKmer{
    code: ^obj.code & kmerMask(obj.k),
    k   : obj.k,
    al  : obj.al }
}

// ReverseComplement returns the complement of the reversed k-mer.
func (obj PackedKmer) ReverseComplement() PackedKmer {
  return obj.Reverse().Complement()
}

// Canonical returns the smaller of the k-mer and its reverse complement
// under payload order, collapsing strand ambiguity.
func (obj PackedKmer) Canonical() PackedKmer {
  if r := obj.ReverseComplement(); r.Less(obj) {
    return r
  }
  return obj
}

/* -------------------------------------------------------------------------- */

// Mismatches counts the positions at which the two k-mers differ. Both
// k-mers must have the same length. The XOR of the payloads is nonzero
// exactly in the differing 2-bit fields; each field is folded onto a
// single bit before the population count so that a field differing in
// both bits still counts as one mismatch.
func (obj PackedKmer) Mismatches(b PackedKmer) (int, error) {
  if obj.k != b.k {
    return 0, ErrLengthMismatch
  }
  x := obj.code ^ b.code
  x  = (x | x >> 1) & 0x5555555555555555
  return bits.OnesCount64(x), nil
}
