package contextkeys

type contextKey string

const (
	WorkerIDKey contextKey = "WorkerID"
	TokenJTIKey contextKey = "TokenJTI"
)
