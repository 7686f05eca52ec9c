// descstat reads newline-separated numbers from stdin and describes
// their distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-descstat/stats"
)

var (
	flagQuantiles = flag.String("q", "", "report these comma-separated `quantiles` (default 0.25,0.5,0.75)")
	flagTrim      = flag.Float64("trim", 0, "drop this `fraction` of each tail before describing")
	flagJSON      = flag.Bool("json", false, "print the summary as a JSON object")
	flagHist      = flag.Bool("hist", false, "print a histogram of the distribution")
	flagBins      = flag.Int("bins", 0, "number of histogram bins; 0 means automatic")
	flagDigits    = flag.Int("digits", 1, "decimal digits of histogram bin boundaries")
	flagWidth     = flag.Int("width", 0, "histogram width in characters; 0 means the terminal width")
)

func main() {
	flag.Parse()

	s := stats.New(readInput(os.Stdin), stats.WithNoCopy())

	if *flagTrim != 0 {
		if err := s.TrimRelative(*flagTrim); err != nil {
			fatal(err)
		}
	}

	var qs []float64
	if *flagQuantiles != "" {
		for _, f := range strings.Split(*flagQuantiles, ",") {
			q, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				fatal(err)
			}
			qs = append(qs, q)
		}
	}

	sum, err := s.Describe(qs...)
	if err != nil {
		fatal(err)
	}

	if *flagJSON {
		b, err := json.Marshal(sum.Map())
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s\n", b)
		return
	}

	fmt.Printf("N %d  sum %.6g\n\n", s.Count(), floats.Sum(s.Values()))
	fmt.Println(sum)

	if *flagHist {
		digits := *flagDigits
		if digits == 0 {
			// Histogram.Digits uses negative for 0 digits.
			digits = -1
		}
		fmt.Println()
		fmt.Println(s.FormatHistogram(&stats.Histogram{
			Count:  *flagBins,
			Digits: digits,
			Width:  *flagWidth,
		}))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fatal(err)
		}

		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fatal(err)
	}

	return xs
}
