// Package minsketch provides generic, sub-linear-space frequency estimation
// over a stream of comparable items, built on the count-min sketch family.
//
// # Overview
//
// minsketch trades exact counts for bounded memory: every sketch answers
// "how many times have I seen this item?" approximately. The count-min
// estimates never underestimate the truth (absent lossy decay); the
// count-mean-min and least-squares variants usually sit much closer to it
// than the naive minimum, but can underestimate. The package covers:
//
//   - CountMinSketch / TopNCountMinSketch: the baseline sketch and its
//     bounded top-N tracker.
//   - HashPairCMS / MultiHashPairTopNCMS: double-hashed sketches trading
//     fewer hash evaluations per update for a looser, epsilon-only bound
//     (MultiHashPairTopNCMS recovers the requested delta by running
//     several independent copies).
//   - CountMeanMinSketch / HashPairCountMeanMinSketch: de-bias each row's
//     raw reading before taking the median instead of the minimum.
//   - LeastSquaresTopNSketch: re-estimates every tracked item's count in
//     one least-squares solve over the whole table.
//   - SketchCounterHybrid: wraps any of the top-N sketches above (not the
//     bare CountMinSketch, which has no MostCommon) with an exact in-memory
//     buffer, trading a little extra memory for exact counts on items
//     still sitting in the buffer.
//
// # Quick start
//
//	cfg := minsketch.DefaultConfig()
//	cfg.N = 50
//
//	sketch, err := minsketch.NewTopNCountMinSketch[string](cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sketch.Add("GET /api/users")
//	sketch.Update("GET /api/users", 41)
//
//	fmt.Println(sketch.Get("GET /api/users")) // >= 42
//	for _, ic := range sketch.MostCommon(10) {
//	    fmt.Printf("%v: %d\n", ic.Item, ic.Count)
//	}
//
// # Sizing
//
// Delta and Epsilon follow the classical count-min sketch bounds: with
// probability at least 1-Delta, every estimate is within Epsilon*Total of
// the truth. Leaving Depth and Width at zero derives them from Delta and
// Epsilon; setting them directly overrides the derivation entirely.
//
// # Counter back-ends
//
// Config.TableBackend selects how counters are stored: TableDense (plain
// uint64, unbounded, the default), TableFixedWidth and TableBitPacked
// (8/16/32/64-bit counters that return an Overflow error rather than wrap),
// and TableMatrix (a flat row-major layout, useful when ToVector is called
// often). Fixed-width back-ends need a little care: a sketch sized for a
// long-running stream should either use TableDense or pair a narrow
// counter width with a LossyStrategy that keeps totals bounded.
//
// # Errors
//
// Construction and writes that fail return structured errors from the
// go-errors package; use IsOverflow, IsSizingError, IsInvalidArgument, and
// IsDimensionMismatch to classify them, or GetErrorCode/GetErrorContext for
// the raw detail.
package minsketch
