package requests

type Pagination struct {
	Page     int
	PageSize int
}

// ReportRange is the optional date window for analytics reports; empty
// strings mean "all time" and are part of the cache key as-is.
type ReportRange struct {
	From string `validate:"omitempty"`
	To   string `validate:"omitempty"`
}
