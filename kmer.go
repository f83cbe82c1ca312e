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

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// MaxKmerLength is the largest number of symbols that fits a single
// 64-bit payload at two bits per symbol.
const MaxKmerLength = 32

/* -------------------------------------------------------------------------- */

// A PackedKmer is an immutable nucleotide sequence of up to MaxKmerLength
// symbols, packed at two bits per symbol into a single 64-bit word. The
// symbol at position i occupies bits [2i, 2i+1], i.e. the first symbol
// sits in the lowest-order bits. Only the low 2k bits of the payload are
// used; all higher bits are zero, and every operation maintains this
// invariant. A PackedKmer never contains an ambiguous symbol.
type PackedKmer struct {
  code uint64
  k    int
  al   ComplementableAlphabet
}

/* -------------------------------------------------------------------------- */

// kmerMask returns a mask selecting the low 2k bits. Shift counts of 64
// and above yield zero, so the mask is empty for k = 0.
func kmerMask(k int) uint64 {
  return ^uint64(0) >> uint(2*(MaxKmerLength-k))
}

/* -------------------------------------------------------------------------- */

// NewPackedKmer packs the given symbols into a k-mer, with k inferred
// from the input length. The input must not contain ambiguous symbols.
func NewPackedKmer(al ComplementableAlphabet, s []byte) (PackedKmer, error) {
  if len(s) > MaxKmerLength {
    return PackedKmer{}, ErrKmerTooLong
  }
  code := uint64(0)
  for i := 0; i < len(s); i++ {
    if ok, err := al.IsAmbiguous(s[i]); err != nil {
      return PackedKmer{}, errors.Wrapf(err, "packing k-mer `%s'", string(s))
    } else {
      if ok {
        return PackedKmer{}, ErrAmbiguousSymbol
      }
    }
    c, err := al.Code(s[i])
    if err != nil {
      return PackedKmer{}, errors.Wrapf(err, "packing k-mer `%s'", string(s))
    }
    code |= uint64(c) << uint(2*i)
  }
  return PackedKmer{code: code, k: len(s), al: al}, nil
}

// NewPackedKmerK packs the given symbols into a k-mer of explicit length
// k, which must match the input length exactly.
func NewPackedKmerK(al ComplementableAlphabet, k int, s []byte) (PackedKmer, error) {
  if k < 0 {
    return PackedKmer{}, ErrInvalidArgument
  }
  if k > MaxKmerLength {
    return PackedKmer{}, ErrKmerTooLong
  }
  if k != len(s) {
    return PackedKmer{}, ErrLengthMismatch
  }
  return NewPackedKmer(al, s)
}

// NewPackedKmerFromSequence packs the k symbols of seq starting at
// position from (0-based). The window must lie within the sequence
// bounds and must not cover an ambiguous position.
func NewPackedKmerFromSequence(al ComplementableAlphabet, seq Sequence, from, k int) (PackedKmer, error) {
  if k < 0 || from < 0 || from+k > seq.Length() {
    return PackedKmer{}, ErrInvalidArgument
  }
  if k > MaxKmerLength {
    return PackedKmer{}, ErrKmerTooLong
  }
  code := uint64(0)
  for i := 0; i < k; i++ {
    b := seq.SymbolAt(from+i)
    if ok, err := al.IsAmbiguous(b); err != nil {
      return PackedKmer{}, errors.Wrapf(err, "packing k-mer at position %d", from)
    } else {
      if ok {
        return PackedKmer{}, ErrAmbiguousSymbol
      }
    }
    c, err := al.Code(b)
    if err != nil {
      return PackedKmer{}, errors.Wrapf(err, "packing k-mer at position %d", from)
    }
    code |= uint64(c) << uint(2*i)
  }
  return PackedKmer{code: code, k: k, al: al}, nil
}

/* -------------------------------------------------------------------------- */

// K returns the number of symbols.
func (obj PackedKmer) K() int {
  return obj.k
}

// Code returns the raw 64-bit payload.
func (obj PackedKmer) Code() uint64 {
  return obj.code
}

// Alphabet returns the alphabet the k-mer was packed with.
func (obj PackedKmer) Alphabet() ComplementableAlphabet {
  return obj.al
}

// At returns the symbol at position i, 0-based with 0 <= i < k.
func (obj PackedKmer) At(i int) (byte, error) {
  if i < 0 || i >= obj.k {
    return 0xFF, ErrIndexOutOfRange
  }
  return obj.al.Decode(byte(obj.code >> uint(2*i) & 3))
}

// Equal compares length and payload. Both alphabets share the same bit
// layout, so the alphabet tag does not participate.
func (obj PackedKmer) Equal(b PackedKmer) bool {
  return obj.k == b.k && obj.code == b.code
}

// Less compares payloads numerically. The order is total and consistent
// with Equal for k-mers of the same length; no tie-break is needed since
// equal payloads imply equal symbol sequences.
func (obj PackedKmer) Less(b PackedKmer) bool {
  return obj.code < b.code
}

/* -------------------------------------------------------------------------- */

func (obj PackedKmer) Bytes() []byte {
  s := make([]byte, obj.k)
  for i := 0; i < obj.k; i++ {
    s[i], _ = obj.al.Decode(byte(obj.code >> uint(2*i) & 3))
  }
  return s
}

func (obj PackedKmer) String() string {
  return string(obj.Bytes())
}

// AsTextSequence converts the k-mer back to the general sequence
// representation.
func (obj PackedKmer) AsTextSequence() TextSequence {
  r, _ := NewTextSequence(obj.al, obj.Bytes())
  return r
}

/* -------------------------------------------------------------------------- */

type PackedKmerIterator struct {
  kmer PackedKmer
  i    int
}

// Iterate returns an iterator over the k symbols in position order. The
// iterator reads from the immutable payload and can be created anew at
// any time.
func (obj PackedKmer) Iterate() PackedKmerIterator {
  return PackedKmerIterator{kmer: obj}
}

func (obj PackedKmerIterator) Ok() bool {
  return obj.i < obj.kmer.k
}

func (obj PackedKmerIterator) Get() byte {
  c, _ := obj.kmer.At(obj.i)
  return c
}

func (obj PackedKmerIterator) GetPosition() int {
  return obj.i
}

func (obj *PackedKmerIterator) Next() {
  obj.i++
}
