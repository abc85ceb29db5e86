package pipeline

// Stats tracks aggregate counters across a batch run.
type Stats struct {
	Found      int
	Converted  int
	Thumbnails int
	Skipped    int
	Failed     int
}
