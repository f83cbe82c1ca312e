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
import "bytes"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestSequenceSet1(t *testing.T) {
  ss  := NewSequenceSet(NucleotideAlphabet{})
  err := ss.ImportFasta("sequence_set_test.fa")

  if err != nil {
    t.Error("test failed")
  }
  if ss.Len() != 2 {
    t.Error("test failed")
  }
  if ss.Seqnames[0] != "chr1" || ss.Seqnames[1] != "chr2" {
    t.Error("test failed")
  }
  if seq, err := ss.Get("chr1"); err != nil {
    t.Error("test failed")
  } else {
    if seq.Length() != 72 {
      t.Error("test failed")
    }
    // case is normalized on import
    if strings.ToLower(seq.String()) != seq.String() {
      t.Error("test failed")
    }
  }
  if seq, err := ss.Get("chr2"); err != nil {
    t.Error("test failed")
  } else {
    if seq.Length() != 32 {
      t.Error("test failed")
    }
    n := 0
    for it := seq.AmbiguousPositions(); it.Ok(); it.Next() {
      n++
    }
    if n != 4 {
      t.Error("test failed")
    }
  }
  if _, err := ss.Get("chr3"); err == nil {
    t.Error("test failed")
  }
}

func TestSequenceSet2(t *testing.T) {
  ss := NewSequenceSet(NucleotideAlphabet{})

  if err := ss.ReadFasta(strings.NewReader(">s1\nacgt\n>s1\nacgt\n")); err == nil {
    t.Error("test failed")
  }
  ss = NewSequenceSet(NucleotideAlphabet{})
  if err := ss.ReadFasta(strings.NewReader(">s1\nacgxt\n")); err == nil {
    t.Error("test failed")
  }
  ss = NewSequenceSet(NucleotideAlphabet{})
  if err := ss.ReadFasta(strings.NewReader("acgt\n")); err == nil {
    t.Error("test failed")
  }
}

func TestSequenceSet3(t *testing.T) {
  ss := NewSequenceSet(NucleotideAlphabet{})
  if err := ss.ReadFasta(strings.NewReader(">s1\nacgtn\nacgt\n>s2\ntttt\n")); err != nil {
    t.Error("test failed")
  }
  buffer := bytes.Buffer{}
  if err := ss.WriteFasta(&buffer); err != nil {
    t.Error("test failed")
  }
  if buffer.String() != ">s1\nacgtnacgt\n>s2\ntttt\n" {
    t.Error("test failed")
  }
}
