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
import "testing"

/* -------------------------------------------------------------------------- */

func TestTextSequence1(t *testing.T) {
  seq, err := NewTextSequenceFromString(NucleotideAlphabet{}, "ACgTNacgtNt")
  if err != nil {
    t.Error("test failed")
  }
  if seq.Length() != 11 {
    t.Error("test failed")
  }
  if seq.String() != "acgtnacgtnt" {
    t.Error("test failed")
  }
  if seq.SymbolAt(0) != 'a' || seq.SymbolAt(10) != 't' {
    t.Error("test failed")
  }
  if _, err := NewTextSequenceFromString(NucleotideAlphabet{}, "acgxt"); err == nil {
    t.Error("test failed")
  }
  if _, err := NewTextSequenceFromString(RibonucleotideAlphabet{}, "acgt"); err == nil {
    t.Error("test failed")
  }
  if _, err := NewTextSequenceFromString(RibonucleotideAlphabet{}, "acgu"); err != nil {
    t.Error("test failed")
  }
}

func TestTextSequence2(t *testing.T) {
  r := []int{4, 9}

  seq, _ := NewTextSequenceFromString(NucleotideAlphabet{}, "acgtnacgtnt")

  i := 0
  for it := seq.AmbiguousPositions(); it.Ok(); it.Next() {
    if it.Get() != r[i] {
      t.Error("test failed")
    }
    i++
  }
  if i != len(r) {
    t.Error("test failed")
  }
}

func TestTextSequence3(t *testing.T) {
  // no ambiguous positions at all
  seq, _ := NewTextSequenceFromString(NucleotideAlphabet{}, "acgtacgt")
  if it := seq.AmbiguousPositions(); it.Ok() {
    t.Error("test failed")
  }
  // nothing but ambiguous positions
  seq, _ = NewTextSequenceFromString(NucleotideAlphabet{}, "nnn")
  i := 0
  for it := seq.AmbiguousPositions(); it.Ok(); it.Next() {
    if it.Get() != i {
      t.Error("test failed")
    }
    i++
  }
  if i != 3 {
    t.Error("test failed")
  }
}
