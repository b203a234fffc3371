package models

// Counter accumulates jobs, pages and bytes. Values only ever grow, one job at a time.
type Counter struct {
	Jobs  int64 `json:"jobs"`
	Pages int64 `json:"pages"`
	Bytes int64 `json:"bytes"`
}

// AddJob records one job of the given size.
func (c *Counter) AddJob(pages, bytes int64) {
	c.Jobs++
	c.Pages += pages
	c.Bytes += bytes
}

// PagesPerJob returns the average page count per job, or 0 when no job was recorded.
func (c Counter) PagesPerJob() float64 {
	if c.Jobs == 0 {
		return 0
	}
	return float64(c.Pages) / float64(c.Jobs)
}

// BytesPerJob returns the average job size in bytes, or 0 when no job was recorded.
func (c Counter) BytesPerJob() float64 {
	if c.Jobs == 0 {
		return 0
	}
	return float64(c.Bytes) / float64(c.Jobs)
}
