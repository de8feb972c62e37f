package response

// ErrorResp is the body of every non-2xx JSON response.
type ErrorResp struct {
	Error string `json:"error"`
}

// DeletedResp is returned by delete endpoints.
type DeletedResp struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
