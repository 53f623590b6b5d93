package ctdf

// PaginationCursor holds opaque paging tokens. They are never interpreted, only passed on.
type PaginationCursor struct {
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// TripsPage is data.trips: the trips exactly as the backend sent them, plus the cursor.
type TripsPage struct {
	Trips            RawTrips          `json:"trips"`
	PaginationCursor *PaginationCursor `json:"paginationCursor"`
}
