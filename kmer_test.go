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
import "errors"
import "math/rand"
import "testing"

/* -------------------------------------------------------------------------- */

func randomKmerString(rng *rand.Rand, k int) []byte {
  letters := []byte("acgt")
  s := make([]byte, k)
  for i := 0; i < k; i++ {
    s[i] = letters[rng.Intn(4)]
  }
  return s
}

/* -------------------------------------------------------------------------- */

func TestPackedKmer1(t *testing.T) {
  r := []string{
    "",
    "a",
    "t",
    "acgt",
    "tttt",
    "gattaca",
    "acgtacgtacgtacgtacgtacgtacgtacgt" }

  for _, s := range r {
    kmer, err := NewPackedKmer(NucleotideAlphabet{}, []byte(s))
    if err != nil {
      t.Error("test failed")
    }
    if kmer.K() != len(s) {
      t.Error("test failed")
    }
    if kmer.String() != s {
      t.Error("test failed")
    }
  }
}

func TestPackedKmer2(t *testing.T) {
  // mixed and upper case input decodes to lower case
  if kmer, err := NewPackedKmer(NucleotideAlphabet{}, []byte("AcGt")); err != nil {
    t.Error("test failed")
  } else {
    if kmer.String() != "acgt" {
      t.Error("test failed")
    }
  }
  if kmer, err := NewPackedKmer(RibonucleotideAlphabet{}, []byte("acgu")); err != nil {
    t.Error("test failed")
  } else {
    if kmer.String() != "acgu" {
      t.Error("test failed")
    }
  }
}

func TestPackedKmer3(t *testing.T) {
  rng := rand.New(rand.NewSource(1))
  // 33 symbols do not fit a 64-bit payload
  if _, err := NewPackedKmer(NucleotideAlphabet{}, randomKmerString(rng, 33)); !errors.Is(err, ErrKmerTooLong) {
    t.Error("test failed")
  }
  // 32 and 0 symbols do
  if _, err := NewPackedKmer(NucleotideAlphabet{}, randomKmerString(rng, 32)); err != nil {
    t.Error("test failed")
  }
  if _, err := NewPackedKmer(NucleotideAlphabet{}, nil); err != nil {
    t.Error("test failed")
  }
  if _, err := NewPackedKmerK(NucleotideAlphabet{}, 3, []byte("acgt")); !errors.Is(err, ErrLengthMismatch) {
    t.Error("test failed")
  }
  if _, err := NewPackedKmerK(NucleotideAlphabet{}, 4, []byte("acgt")); err != nil {
    t.Error("test failed")
  }
  if _, err := NewPackedKmer(NucleotideAlphabet{}, []byte("acgn")); !errors.Is(err, ErrAmbiguousSymbol) {
    t.Error("test failed")
  }
  if _, err := NewPackedKmer(NucleotideAlphabet{}, []byte("acgx")); err == nil {
    t.Error("test failed")
  }
}

func TestPackedKmer4(t *testing.T) {
  kmer, _ := NewPackedKmer(NucleotideAlphabet{}, []byte("gattaca"))

  if c, err := kmer.At(0); err != nil || c != 'g' {
    t.Error("test failed")
  }
  if c, err := kmer.At(6); err != nil || c != 'a' {
    t.Error("test failed")
  }
  if _, err := kmer.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
    t.Error("test failed")
  }
  if _, err := kmer.At(7); !errors.Is(err, ErrIndexOutOfRange) {
    t.Error("test failed")
  }
  s := []byte{}
  for it := kmer.Iterate(); it.Ok(); it.Next() {
    s = append(s, it.Get())
  }
  if string(s) != "gattaca" {
    t.Error("test failed")
  }
}

func TestPackedKmer5(t *testing.T) {
  rng := rand.New(rand.NewSource(2))
  // the payload order is total and consistent with equality
  for n := 0; n < 1000; n++ {
    k := rng.Intn(9)
    x, _ := NewPackedKmer(NucleotideAlphabet{}, randomKmerString(rng, k))
    y, _ := NewPackedKmer(NucleotideAlphabet{}, randomKmerString(rng, k))
    if x.Equal(y) {
      if x.Less(y) || y.Less(x) {
        t.Error("test failed")
      }
      if x.String() != y.String() {
        t.Error("test failed")
      }
    } else {
      if x.Less(y) == y.Less(x) {
        t.Error("test failed")
      }
    }
  }
}

func TestPackedKmer6(t *testing.T) {
  rng := rand.New(rand.NewSource(3))
  for n := 0; n < 100; n++ {
    s := randomKmerString(rng, rng.Intn(33))
    kmer, err := NewPackedKmer(NucleotideAlphabet{}, s)
    if err != nil {
      t.Error("test failed")
    }
    if string(kmer.Bytes()) != string(s) {
      t.Error("test failed")
    }
  }
}

func TestPackedKmer7(t *testing.T) {
  seq, _ := NewTextSequenceFromString(NucleotideAlphabet{}, "acgtnacgt")

  if kmer, err := NewPackedKmerFromSequence(NucleotideAlphabet{}, seq, 0, 4); err != nil {
    t.Error("test failed")
  } else {
    if kmer.String() != "acgt" {
      t.Error("test failed")
    }
  }
  if _, err := NewPackedKmerFromSequence(NucleotideAlphabet{}, seq, 2, 4); !errors.Is(err, ErrAmbiguousSymbol) {
    t.Error("test failed")
  }
  if _, err := NewPackedKmerFromSequence(NucleotideAlphabet{}, seq, 6, 4); !errors.Is(err, ErrInvalidArgument) {
    t.Error("test failed")
  }
  kmer, _ := NewPackedKmer(NucleotideAlphabet{}, []byte("gattaca"))
  if kmer.AsTextSequence().String() != "gattaca" {
    t.Error("test failed")
  }
}
