package message

const (
	InvalidInput      = "Invalid input."
	InvalidToken      = "Invalid or missing credentials."
	InsufficientRole  = "Insufficient permissions."
	AutomobileMissing = "There is no such automobile."
	ServerFault       = "Something went wrong."
	EnvErrFmt         = "environment variable is not set: %s"
)
