package suite

import (
	"fmt"
	"time"
)

// toolRun executes one test instance for one tool/action pair. A failed run
// is reported through the recorder and leaves its duration undefined; it
// never aborts the surrounding run set.
type toolRun struct {
	id      int
	tool    Tool
	factory TestFactory

	elapsed  time.Duration
	measured bool
}

func (r *toolRun) perform(rec Recorder) {
	label := fmt.Sprintf("run %d of %s using %s", r.id, r.factory.TestName(), r.tool.Name())
	rec.Notify("performing " + label)

	elapsed, err := Perform(r.factory.MakeTest(r.tool))
	if err != nil {
		rec.Notify(fmt.Sprintf("%s failed: %v", label, err))
		return
	}

	r.elapsed = elapsed
	r.measured = true
}

// duration returns the measured elapsed time. The second return value is
// false unless the run's timed phase completed without failure.
func (r *toolRun) duration() (time.Duration, bool) {
	return r.elapsed, r.measured
}

// toolRunSet executes the N repeated runs for a single tool/action pair and
// reduces the successful durations to one aggregate result line. Failed runs
// have already been reported individually, so they are dropped from the
// aggregate; if every run failed the degenerate result is still logged.
type toolRunSet struct {
	tool    Tool
	factory TestFactory
	runs    []*toolRun
}

func newToolRunSet(numRuns int, tool Tool, factory TestFactory) *toolRunSet {
	runs := make([]*toolRun, 0, numRuns)
	for id := 1; id <= numRuns; id++ {
		runs = append(runs, &toolRun{id: id, tool: tool, factory: factory})
	}
	return &toolRunSet{tool: tool, factory: factory, runs: runs}
}

func (s *toolRunSet) perform(rec Recorder) {
	rec.Notify(fmt.Sprintf("performing %s tests using %s", s.factory.TestName(), s.tool.Name()))

	for _, run := range s.runs {
		run.perform(rec)
	}

	samples := make([]float64, 0, len(s.runs))
	for _, run := range s.runs {
		if d, ok := run.duration(); ok {
			samples = append(samples, d.Seconds())
		}
	}

	result := NewResult(samples)
	rec.Log(fmt.Sprintf("%s: %g [%g, %g] s",
		s.tool.Name(), result.GeoMean(), result.LowerBound(), result.UpperBound()))
}

// performanceComparison measures every tool against the same test factory,
// so the tools are compared head-to-head under identical fixture conditions.
type performanceComparison struct {
	factory TestFactory
	runSets []*toolRunSet
}

func newPerformanceComparison(numRuns int, tools []Tool, factory TestFactory) *performanceComparison {
	runSets := make([]*toolRunSet, 0, len(tools))
	for _, tool := range tools {
		runSets = append(runSets, newToolRunSet(numRuns, tool, factory))
	}
	return &performanceComparison{factory: factory, runSets: runSets}
}

func (c *performanceComparison) perform(rec Recorder) {
	rec.Notify(fmt.Sprintf("performing %s tests", c.factory.TestName()))
	rec.Log(fmt.Sprintf("\n%s results", c.factory.TestName()))

	for _, runSet := range c.runSets {
		runSet.perform(rec)
	}
}

// PerformanceSuite is the top-level orchestrator. It runs one comparison per
// registered action, in registration order, with tools measured in the order
// supplied. Run is the sole entry point of the engine.
type PerformanceSuite struct {
	comparisons []*performanceComparison
}

// New creates a performance suite that has each tool perform each action
// numRuns times.
func New(numRuns int, tools []Tool, factories []TestFactory) *PerformanceSuite {
	comparisons := make([]*performanceComparison, 0, len(factories))
	for _, factory := range factories {
		comparisons = append(comparisons, newPerformanceComparison(numRuns, tools, factory))
	}
	return &PerformanceSuite{comparisons: comparisons}
}

// Run performs all comparisons, sending notifications and result lines to
// the recorder. It returns after every comparison has completed; individual
// run failures have already been absorbed and reported by then.
func (s *PerformanceSuite) Run(rec Recorder) {
	rec.Notify("starting performance test suite")
	for _, comparison := range s.comparisons {
		comparison.perform(rec)
	}
}
