package services

// ServiceError carries the HTTP status a failed operation maps to.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
