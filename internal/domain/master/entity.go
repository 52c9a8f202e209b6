package master

// Department and Designation are read-only reference data owned by the
// upstream HR API; the console only lists them to populate selection controls.

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Designation struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
