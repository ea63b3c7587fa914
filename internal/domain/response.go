package domain

// Row is one extracted table row. Cells are opaque strings, passed
// through exactly as extracted.
type Row []string

// ResultSet is the ordered set of rows extracted from one page. The
// first row is conventionally the header, but nothing enforces that.
// A ResultSet may be empty.
type ResultSet []Row

// Envelope status tags.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TableResponse is the success envelope returned by the API.
type TableResponse struct {
	Status string    `json:"status"`
	Data   ResultSet `json:"data"`
	URL    string    `json:"url"`
}

// ErrorResponse is the failure envelope returned by the API, paired with
// HTTP 400 for validation failures and 500 for extraction failures.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CategoryListing is the response body of the catalog endpoint.
type CategoryListing struct {
	Categories []Category `json:"categories"`
}

// NewTableResponse wraps extracted rows and the retrieval URL. The data
// array is never null, even for an empty result.
func NewTableResponse(rows ResultSet, url string) *TableResponse {
	if rows == nil {
		rows = ResultSet{}
	}
	return &TableResponse{Status: StatusSuccess, Data: rows, URL: url}
}

// NewErrorResponse wraps a failure message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Status: StatusError, Message: message}
}
