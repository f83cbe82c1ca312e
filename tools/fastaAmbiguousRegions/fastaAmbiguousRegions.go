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

package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/nucseq"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importFasta(config Config, filename string) SequenceSet {
  s := NewSequenceSet(NucleotideAlphabet{})
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

/* -------------------------------------------------------------------------- */

func fastaAmbiguousRegions(config Config, filenameFasta, filenameOutput string) {
  var writer io.Writer

  if filenameOutput == "" {
    writer = os.Stdout
  } else {
    f, err := os.Create(filenameOutput)
    if err != nil {
      log.Fatal(err)
    }
    buffer := bufio.NewWriter(f)
    writer  = buffer
    defer f.Close()
    defer buffer.Flush()
  }
  ss := importFasta(config, filenameFasta)

  for _, name := range ss.Seqnames {
    sequence := ss.Sequences[name]
    // merge consecutive ambiguous positions into maximal runs and
    // report them as 0-based half-open intervals
    from := -1
    to   := -1
    for it := sequence.AmbiguousPositions(); it.Ok(); it.Next() {
      if it.Get() == to {
        to = it.Get()+1
        continue
      }
      if from != -1 {
        fmt.Fprintf(writer, "%s\t%d\t%d\n", name, from, to)
      }
      from = it.Get()
      to   = it.Get()+1
    }
    if from != -1 {
      fmt.Fprintf(writer, "%s\t%d\t%d\n", name, from, to)
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}

  options := getopt.New()

  optHelp    := options.   BoolLong("help",    'h', "print help")
  optVerbose := options.CounterLong("verbose", 'v', "be verbose")

  options.SetParameters("<SEQUENCES.fa> [OUTPUT.bed]\n")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose
  filenameFasta  := options.Args()[0]
  filenameOutput := ""
  if len(options.Args()) == 2 {
    filenameOutput = options.Args()[1]
  }
  fastaAmbiguousRegions(config, filenameFasta, filenameOutput)
}
