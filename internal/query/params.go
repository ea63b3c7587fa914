package query

// Params carries the raw inbound parameters exactly as the HTTP layer
// received them. Year stays a raw token so the validator owns parsing;
// an empty Subcategory means none was supplied.
type Params struct {
	Year        string
	Category    string
	Subcategory string
}
