package waste

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lowperf/pkg/clock"
)

const (
	fragmentMarker    = "User"
	fragmentSeparator = ";"
)

// StringResult summarizes ConcatStrings.
type StringResult struct {
	Iterations     int
	AccumulatedLen int
	Fragments      int
	FinalLen       int
}

// ConcatStrings grows a string with += for iterations rounds, each round
// appending "User<i>_Data_Processing_<millis>;". It then splits the text on
// ";", uppercases every fragment containing "User" and concatenates those
// again, one per line.
func ConcatStrings(iterations int, clk clock.Clock) StringResult {
	accumulated := accumulate(iterations, clk)
	final, kept := filterUpper(accumulated)

	return StringResult{
		Iterations:     iterations,
		AccumulatedLen: len(accumulated),
		Fragments:      kept,
		FinalLen:       len(final),
	}
}

func accumulate(iterations int, clk clock.Clock) string {
	result := ""
	for i := 0; i < iterations; i++ {
		result += "User" + strconv.Itoa(i) + "_Data_Processing_" +
			strconv.FormatInt(clk.Now().UnixMilli(), 10) + fragmentSeparator
	}
	return result
}

// filterUpper keeps the fragments of text that contain the marker and
// returns them uppercased, each followed by a newline.
func filterUpper(text string) (string, int) {
	upper := cases.Upper(language.Und)
	finalResult := ""
	kept := 0
	for _, part := range strings.Split(text, fragmentSeparator) {
		if strings.Contains(part, fragmentMarker) {
			finalResult += upper.String(part) + "\n"
			kept++
		}
	}
	return finalResult, kept
}
