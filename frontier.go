package gtmagent

// URLFrontier manages a crawl queue with deduplication.
type URLFrontier interface {
	// Push appends a URL to the back of the queue.
	// Returns false if the URL has already been visited or queued.
	Push(url string) bool

	// Pop removes and returns the URL at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been visited or queued.
	Seen(url string) bool
}
