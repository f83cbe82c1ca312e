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

//import "fmt"

/* -------------------------------------------------------------------------- */

// A KmerSequenceIterator enumerates all k-length windows of a sequence
// that contain no ambiguous position, in ascending order of their right
// edge, as (start position, PackedKmer) pairs. Successive emitted right
// edges differ by a positive multiple of the step size. The window
// payload is built incrementally by shifting one 2-bit code in from the
// high end per position, so each emission costs O(1) amortized. The
// iterator borrows the sequence; the sequence must remain unmodified
// until the iterator is abandoned or exhausted.
type KmerSequenceIterator struct {
  seq    Sequence
  al     ComplementableAlphabet
  k      int
  step   int
  amb    PositionIterator
  window uint64
  i      int
  skip   int
  ok     bool
}

/* -------------------------------------------------------------------------- */

// NewKmerSequenceIterator validates k and step eagerly: k must lie in
// [0, 32] and step must be positive. The returned iterator is
// positioned on the first emission, if any; restarting requires a fresh
// iterator.
func NewKmerSequenceIterator(seq Sequence, al ComplementableAlphabet, k, step int) (*KmerSequenceIterator, error) {
  if k > MaxKmerLength {
    return nil, ErrKmerTooLong
  }
  if k < 0 || step < 1 {
    return nil, ErrInvalidArgument
  }
  r := KmerSequenceIterator{
    seq : seq,
    al  : al,
    k   : k,
    step: step,
    amb : seq.AmbiguousPositions(),
    i   : -1,
    ok  : true }
  r.Next()
  return &r, nil
}

/* -------------------------------------------------------------------------- */

func (obj *KmerSequenceIterator) Ok() bool {
  return obj.ok
}

// Get returns the k-mer of the current window. The window payload holds
// the code of the start position in its low bits, matching the packed
// k-mer layout, so no re-encoding is required.
func (obj *KmerSequenceIterator) Get() PackedKmer {
  return PackedKmer{code: obj.window, k: obj.k, al: obj.al}
}

// GetPosition returns the 0-based start position of the current window.
// For k = 0 this is the position following the current right edge, i.e.
// the empty window is anchored after the position last considered.
func (obj *KmerSequenceIterator) GetPosition() int {
  return obj.i - obj.k + 1
}

/* -------------------------------------------------------------------------- */

// Next advances the iterator to the next valid window. Each position is
// visited exactly once: the ambiguous-position cursor is caught up
// lazily, and on hitting an ambiguous position the pending skip counter
// is raised in one step to cover all k forbidden windows, rounded up to
// a multiple of the step size so that emitted right edges stay on the
// stride grid.
func (obj *KmerSequenceIterator) Next() {
  if !obj.ok {
    return
  }
  n := obj.seq.Length()
  for obj.i++; obj.i < n; obj.i++ {
    // catch up the ambiguous cursor; positions already passed cannot
    // affect any future window
    for obj.amb.Ok() && obj.amb.Get() < obj.i {
      obj.amb.Next()
    }
    if obj.k > 0 {
      c := byte(0)
      if obj.amb.Ok() && obj.amb.Get() == obj.i {
        // every window ending in [i, i+k-1] covers this position; raise
        // the skip counter to the smallest value >= k that keeps the
        // emission schedule on the stride grid
        if d := obj.k - obj.skip; d > 0 {
          obj.skip += divIntUp(d, obj.step)*obj.step
        }
      } else {
        c, _ = obj.al.Code(obj.seq.SymbolAt(obj.i))
      }
      // the window always reflects the most recent k codes read, even
      // mid-skip, so it is valid the instant skipping ends
      obj.window = (obj.window >> 2) | uint64(c) << uint(2*(obj.k-1))
    }
    // the skip counter counts down at every position, including those
    // before the first full window, so that an ambiguous symbol near
    // the start forbids exactly the windows covering it
    if obj.skip > 0 {
      obj.skip--
      continue
    }
    if obj.i < obj.k-1 {
      continue
    }
    obj.skip = obj.step-1
    return
  }
  obj.ok = false
}
