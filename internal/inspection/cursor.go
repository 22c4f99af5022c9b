package inspection

// Page is one rendered slice of a checklist: items [Start, End) fit on the
// current page; HasMore says another page is needed for the rest.
type Page struct {
	Start   int
	End     int
	HasMore bool
}

// Cursor is the pagination state for one print job, passed into and returned
// from each render step rather than hidden behind mutation, so repeated jobs
// can be tested in isolation. A cursor belongs to exactly one job for the
// job's duration; it is never reset mid-job.
type Cursor struct {
	next int
	done bool
}

// Start positions a fresh cursor at the first item.
func Start() Cursor {
	return Cursor{}
}

// Step consumes up to capacity items from the cursor position. It returns the
// page to render and the successor cursor: positioned at the first unrendered
// item when more pages are needed, done when the list is exhausted. A page
// with no capacity makes no progress and still reports more pages.
func (c Cursor) Step(total, capacity int) (Page, Cursor) {
	if c.done || c.next >= total {
		return Page{Start: c.next, End: c.next}, Cursor{next: total, done: true}
	}
	if capacity <= 0 {
		return Page{Start: c.next, End: c.next, HasMore: true}, c
	}

	end := c.next + capacity
	if end >= total {
		return Page{Start: c.next, End: total}, Cursor{next: total, done: true}
	}
	return Page{Start: c.next, End: end, HasMore: true}, Cursor{next: end}
}

// Index is the position of the first unrendered item.
func (c Cursor) Index() int {
	return c.next
}

// Done reports whether the job has rendered every item.
func (c Cursor) Done() bool {
	return c.done
}
