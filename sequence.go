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

// A PositionIterator enumerates integer positions in ascending order.
type PositionIterator interface {
  Ok  () bool
  Get () int
  Next()
}

// A Sequence is the minimal capability required of a nucleotide
// sequence for k-mer enumeration: a length, 0-based symbol access, and
// a lazy ascending enumeration of the positions holding an ambiguous
// symbol. Implementations must remain unmodified while an iterator over
// them is in use.
type Sequence interface {
  Length            () int
  SymbolAt          (i int) byte
  AmbiguousPositions() PositionIterator
}

/* -------------------------------------------------------------------------- */

// A TextSequence is a nucleotide sequence stored as a byte slice
// together with its alphabet. All symbols are validated against the
// alphabet and normalized to lower case on construction; ambiguous
// symbols are allowed.
type TextSequence struct {
  al ComplementableAlphabet
  s  []byte
}

func NewTextSequence(al ComplementableAlphabet, s []byte) (TextSequence, error) {
  t := make([]byte, len(s))
  for i := 0; i < len(s); i++ {
    c, err := al.Code(s[i])
    if err != nil {
      return TextSequence{}, errors.Wrapf(err, "sequence position %d", i)
    }
    t[i], _ = al.Decode(c)
  }
  return TextSequence{al: al, s: t}, nil
}

func NewTextSequenceFromString(al ComplementableAlphabet, s string) (TextSequence, error) {
  return NewTextSequence(al, []byte(s))
}

/* -------------------------------------------------------------------------- */

func (obj TextSequence) Length() int {
  return len(obj.s)
}

// SymbolAt returns the symbol at position i, 0-based. The position must
// be within bounds.
func (obj TextSequence) SymbolAt(i int) byte {
  return obj.s[i]
}

func (obj TextSequence) Alphabet() ComplementableAlphabet {
  return obj.al
}

func (obj TextSequence) Bytes() []byte {
  return obj.s
}

func (obj TextSequence) String() string {
  return string(obj.s)
}

/* -------------------------------------------------------------------------- */

type textSequencePositionIterator struct {
  seq TextSequence
  i   int
}

// AmbiguousPositions returns a lazy iterator over the positions holding
// an ambiguous symbol, in ascending order. Positions are scanned on
// demand and never re-visited.
func (obj TextSequence) AmbiguousPositions() PositionIterator {
  r := textSequencePositionIterator{seq: obj, i: -1}
  r.Next()
  return &r
}

func (obj *textSequencePositionIterator) Ok() bool {
  return obj.i < obj.seq.Length()
}

func (obj *textSequencePositionIterator) Get() int {
  return obj.i
}

func (obj *textSequencePositionIterator) Next() {
  for obj.i++; obj.i < obj.seq.Length(); obj.i++ {
    if ok, _ := obj.seq.al.IsAmbiguous(obj.seq.s[obj.i]); ok {
      return
    }
  }
}
