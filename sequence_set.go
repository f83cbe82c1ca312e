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

import "bufio"
import "bytes"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strings"
import "unicode"

import "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// A SequenceSet is an ordered collection of named sequences over a
// common alphabet.
type SequenceSet struct {
  Sequences map[string]TextSequence
  Seqnames  []string
  Alphabet  ComplementableAlphabet
}

/* -------------------------------------------------------------------------- */

func NewSequenceSet(al ComplementableAlphabet) SequenceSet {
  return SequenceSet{
    Sequences: make(map[string]TextSequence),
    Seqnames :  []string{},
    Alphabet : al }
}

/* -------------------------------------------------------------------------- */

func (obj *SequenceSet) Add(name string, sequence TextSequence) error {
  if _, ok := obj.Sequences[name]; ok {
    return fmt.Errorf("duplicate sequence name `%s'", name)
  }
  obj.Sequences[name] = sequence
  obj.Seqnames        = append(obj.Seqnames, name)
  return nil
}

func (obj SequenceSet) Get(name string) (TextSequence, error) {
  if s, ok := obj.Sequences[name]; ok {
    return s, nil
  }
  return TextSequence{}, fmt.Errorf("sequence `%s' not found", name)
}

func (obj SequenceSet) Len() int {
  return len(obj.Seqnames)
}

/* -------------------------------------------------------------------------- */

func (obj *SequenceSet) ReadFasta(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  // current sequence
  name := ""
  seq  := []byte{}

  flush := func() error {
    if name == "" {
      return nil
    }
    s, err := NewTextSequence(obj.Alphabet, seq)
    if err != nil {
      return errors.Wrapf(err, "sequence `%s'", name)
    }
    return obj.Add(name, s)
  }

  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if err := flush(); err != nil {
        return err
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, line...)
    }
  }
  return flush()
}

func (obj *SequenceSet) ImportFasta(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return obj.ReadFasta(reader)
}

/* -------------------------------------------------------------------------- */

func (obj SequenceSet) WriteFasta(writer io.Writer) error {
  for _, name := range obj.Seqnames {
    seq := obj.Sequences[name].Bytes()
    if _, err := fmt.Fprintf(writer,  ">%s\n", name); err != nil {
      return err
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := i+80
      if to >= len(seq) {
        to = len(seq)
      }
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj SequenceSet) ExportFasta(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteFasta(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
