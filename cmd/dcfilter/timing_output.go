package main

import (
	"fmt"
	"io"
	"time"

	"dcfilter/internal/driver"
	"dcfilter/internal/pipeline"
)

// printFileTimings печатает время загрузки и лексинга по каждому файлу.
func printFileTimings(out io.Writer, results []driver.TokenizeDirResult) {
	if out == nil {
		return
	}
	var total pipeline.Timings
	for _, res := range results {
		fmt.Fprintf(out, "%-32s", res.Path)
		if res.Timings.Has(pipeline.StageLoad) {
			fmt.Fprintf(out, " load %.3f ms", toMillis(res.Timings.Duration(pipeline.StageLoad)))
		}
		if res.Timings.Has(pipeline.StageLex) {
			fmt.Fprintf(out, " lex %.3f ms", toMillis(res.Timings.Duration(pipeline.StageLex)))
		}
		fmt.Fprintln(out)
		total.Set(pipeline.StageLoad, total.Duration(pipeline.StageLoad)+res.Timings.Duration(pipeline.StageLoad))
		total.Set(pipeline.StageLex, total.Duration(pipeline.StageLex)+res.Timings.Duration(pipeline.StageLex))
	}
	if len(results) > 0 {
		fmt.Fprintf(out, "cpu time across files: %.3f ms\n", toMillis(total.Sum(pipeline.StageLoad, pipeline.StageLex)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
