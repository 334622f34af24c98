package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total        int
	Current      int
	Converted    int
	Skipped      int
	Failed       int
	BytesWritten int64
}

// Pending returns how many sources were never reached because the batch
// stopped early.
func (s *RunStats) Pending() int {
	return s.Total - s.Current
}
