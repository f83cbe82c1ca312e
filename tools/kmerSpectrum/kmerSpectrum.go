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

import   "fmt"
import   "log"
import   "os"
import   "sort"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/nucseq"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  Alphabet ComplementableAlphabet
  Step     int
  Verbose  int
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

func countKmers(config Config, ss SequenceSet, k int) map[PackedKmer]int {
  counts := make(map[PackedKmer]int)

  for _, name := range ss.Seqnames {
    it, err := NewKmerSequenceIterator(ss.Sequences[name], config.Alphabet, k, config.Step)
    if err != nil {
      log.Fatal(err)
    }
    for ; it.Ok(); it.Next() {
      counts[it.Get().Canonical()] += 1
    }
  }
  return counts
}

// the spectrum maps each multiplicity to the number of distinct
// canonical k-mers observed that often
func computeSpectrum(counts map[PackedKmer]int) ([]int, []float64) {
  spectrum := make(map[int]int)
  for _, c := range counts {
    spectrum[c] += 1
  }
  x := make([]int, 0, len(spectrum))
  for c, _ := range spectrum {
    x = append(x, c)
  }
  sort.Ints(x)
  y := make([]float64, len(x))
  for i, c := range x {
    y[i] = float64(spectrum[c])
  }
  return x, y
}

func plotSpectrum(config Config, x []int, y []float64, filename string) {
  xy := make(plotter.XYs, len(x))
  for i := 0; i < len(x); i++ {
    xy[i].X = float64(x[i])
    xy[i].Y = y[i]
  }
  p := plot.New()
  p.Title.Text = ""
  p.X.Label.Text = "multiplicity"
  p.Y.Label.Text = "distinct k-mers"
  p.X.Scale = plot.LogScale{}
  p.Y.Scale = plot.LogScale{}
  p.X.Tick.Marker = plot.LogTicks{Prec: -1}
  p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

  if err := plotutil.AddLinePoints(p, xy); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote k-mer spectrum to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func kmerSpectrum(config Config, k int, filenameFasta, filenameOut string) {
  ss := ImportFasta(config, filenameFasta)

  counts := countKmers(config, ss, k)
  if len(counts) == 0 {
    log.Fatal("sequences contain no k-mers")
  }
  x, y := computeSpectrum(counts)
  plotSpectrum(config, x, y, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optAlphabet := options. StringLong("alphabet",  0 , "nucleotide", "nucleotide or ribonucleotide")
  optStep     := options.    IntLong("step",      0 ,  1,           "distance between successive k-mer windows [default: 1]")
  optVerbose  := options.CounterLong("verbose",  'v',               "be verbose")
  optHelp     := options.   BoolLong("help",     'h',               "print help")

  options.SetParameters("<K> <INPUT.fasta> <OUTPUT.pdf>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
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
  config.Step    = *optStep
  config.Verbose = *optVerbose

  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if k < 1 || k > MaxKmerLength {
    log.Fatalf("invalid k-mer length `%d'", k)
  }

  kmerSpectrum(config, int(k), options.Args()[1], options.Args()[2])
}
