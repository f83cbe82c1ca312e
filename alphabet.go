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

import "fmt"

/* -------------------------------------------------------------------------- */

// A ComplementableAlphabet maps four concrete nucleotide letters to the
// 2-bit codes {0,1,2,3} and back, defines a complement among the concrete
// letters, and carries one additional ambiguous letter that may appear in
// sequences but never inside a packed k-mer. The coded complement must
// satisfy ComplementCoded(c) == ^c & 3 for all concrete codes c; the
// packed complement operation relies on this property.
type ComplementableAlphabet interface {
  Code             (i byte) (byte, error)
  Decode           (i byte) (byte, error)
  Complement       (i byte) (byte, error)
  ComplementCoded  (i byte) (byte, error)
  IsAmbiguous      (i byte) (bool, error)
  Length           ()       int
  LengthUnambiguous()       int
  String           ()       string
}

/* -------------------------------------------------------------------------- */

type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 0, nil
  case 'C': fallthrough
  case 'c': return 1, nil
  case 'G': fallthrough
  case 'g': return 2, nil
  case 'T': fallthrough
  case 't': return 3, nil
  case 'N': fallthrough
  case 'n': return 4, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'a', nil
  case 1:  return 'c', nil
  case 2:  return 'g', nil
  case 3:  return 't', nil
  case 4:  return 'n', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 't', nil
  case 'C': fallthrough
  case 'c': return 'g', nil
  case 'G': fallthrough
  case 'g': return 'c', nil
  case 'T': fallthrough
  case 't': return 'a', nil
  case 'N': fallthrough
  case 'n': return 'n', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  switch i {
  case 0:  return 3, nil
  case 1:  return 2, nil
  case 2:  return 1, nil
  case 3:  return 0, nil
  case 4:  return 4, nil
  default: return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet", int(i))
  }
}

func (NucleotideAlphabet) IsAmbiguous(i byte) (bool, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return false, nil
  case 'C': fallthrough
  case 'c': return false, nil
  case 'G': fallthrough
  case 'g': return false, nil
  case 'T': fallthrough
  case 't': return false, nil
  case 'N': fallthrough
  case 'n': return true, nil
  default:  return false, fmt.Errorf("IsAmbiguous(): `%c' is not part of the alphabet", i)
  }
}

func (NucleotideAlphabet) Length() int {
  return 5
}

func (NucleotideAlphabet) LengthUnambiguous() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

type RibonucleotideAlphabet struct {
}

func (RibonucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 0, nil
  case 'C': fallthrough
  case 'c': return 1, nil
  case 'G': fallthrough
  case 'g': return 2, nil
  case 'U': fallthrough
  case 'u': return 3, nil
  case 'N': fallthrough
  case 'n': return 4, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet", i)
  }
}

func (RibonucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'a', nil
  case 1:  return 'c', nil
  case 2:  return 'g', nil
  case 3:  return 'u', nil
  case 4:  return 'n', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet", int(i))
  }
}

func (RibonucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 'u', nil
  case 'C': fallthrough
  case 'c': return 'g', nil
  case 'G': fallthrough
  case 'g': return 'c', nil
  case 'U': fallthrough
  case 'u': return 'a', nil
  case 'N': fallthrough
  case 'n': return 'n', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet", i)
  }
}

func (RibonucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  switch i {
  case 0:  return 3, nil
  case 1:  return 2, nil
  case 2:  return 1, nil
  case 3:  return 0, nil
  case 4:  return 4, nil
  default: return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet", int(i))
  }
}

func (RibonucleotideAlphabet) IsAmbiguous(i byte) (bool, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return false, nil
  case 'C': fallthrough
  case 'c': return false, nil
  case 'G': fallthrough
  case 'g': return false, nil
  case 'U': fallthrough
  case 'u': return false, nil
  case 'N': fallthrough
  case 'n': return true, nil
  default:  return false, fmt.Errorf("IsAmbiguous(): `%c' is not part of the alphabet", i)
  }
}

func (RibonucleotideAlphabet) Length() int {
  return 5
}

func (RibonucleotideAlphabet) LengthUnambiguous() int {
  return 4
}

func (RibonucleotideAlphabet) String() string {
  return "ribonucleotide alphabet"
}
