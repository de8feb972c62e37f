package response

const (
	messageUnauthorized = "unauthorized"
	messageInternal     = "internal server error"
)
