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
import   "log"
import   "io"
import   "os"
import   "sort"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/nucseq"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Alphabet  ComplementableAlphabet
  Canonical bool
  Step      int
  Threads   int
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func ImportFasta(config Config, filename string) SequenceSet {
  s := NewSequenceSet(config.Alphabet)
  if filename == "" {
    if err := s.ReadFasta(os.Stdin); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
    if err := s.ImportFasta(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return s
}

/* -------------------------------------------------------------------------- */

func WriteResult(config Config, seqnames []string, counts []map[PackedKmer]int, filenameOut string) {
  var writer io.Writer

  if filenameOut == "" {
    writer = os.Stdout
  } else {
    f, err := os.Create(filenameOut)
    if err != nil {
      log.Fatal(err)
    }
    buffer := bufio.NewWriter(f)
    writer  = buffer
    defer f.Close()
    defer buffer.Flush()
  }
  for i, name := range seqnames {
    kmers := make([]PackedKmer, 0, len(counts[i]))
    for kmer, _ := range counts[i] {
      kmers = append(kmers, kmer)
    }
    sort.Slice(kmers, func(i, j int) bool {
      return kmers[i].Less(kmers[j])
    })
    for _, kmer := range kmers {
      fmt.Fprintf(writer, "%s\t%s\t%d\n", name, kmer, counts[i][kmer])
    }
  }
}

/* -------------------------------------------------------------------------- */

func scanSequence(config Config, sequence TextSequence, k int) map[PackedKmer]int {
  r := make(map[PackedKmer]int)

  it, err := NewKmerSequenceIterator(sequence, config.Alphabet, k, config.Step)
  if err != nil {
    log.Fatal(err)
  }
  for ; it.Ok(); it.Next() {
    kmer := it.Get()
    if config.Canonical {
      kmer = kmer.Canonical()
    }
    r[kmer] += 1
  }
  return r
}

/* -------------------------------------------------------------------------- */

func countPackedKmers(config Config, k int, filenameFasta, filenameOut string) {
  pool := threadpool.New(config.Threads, 100*config.Threads)
  ss   := ImportFasta(config, filenameFasta)

  sequences := make([]TextSequence, ss.Len())
  for i, name := range ss.Seqnames {
    sequences[i] = ss.Sequences[name]
  }
  counts := make([]map[PackedKmer]int, len(sequences))

  pool.RangeJob(0, len(sequences), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    counts[i] = scanSequence(config, sequences[i], k)
    return nil
  })
  WriteResult(config, ss.Seqnames, counts, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optAlphabet  := options. StringLong("alphabet",  0 , "nucleotide", "nucleotide or ribonucleotide")
  optCanonical := options.   BoolLong("canonical", 0 ,               "collapse k-mers with their reverse complement")
  optStep      := options.    IntLong("step",      0 ,  1,           "distance between successive k-mer windows [default: 1]")
  optThreads   := options.    IntLong("threads",   0 ,  1,           "number of threads [default: 1]")
  optVerbose   := options.CounterLong("verbose",  'v',               "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",     'h',               "print help")

  options.SetParameters("<K> [<INPUT.fasta> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  switch strings.ToLower(*optAlphabet) {
  case "nucleotide"    : config.Alphabet =     NucleotideAlphabet{}
  case "ribonucleotide": config.Alphabet = RibonucleotideAlphabet{}
  default:
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Canonical = *optCanonical
  config.Step      = *optStep
  config.Threads   = *optThreads
  config.Verbose   = *optVerbose
  // check required arguments
  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if k < 0 || k > MaxKmerLength {
    log.Fatalf("invalid k-mer length `%d'", k)
  }
  if config.Step < 1 {
    log.Fatalf("invalid step size `%d'", config.Step)
  }
  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }

  countPackedKmers(config, int(k), filenameFasta, filenameOut)
}
