package mongodb

import "errors"

var (
	// ErrFailedToConnect is returned when the client cannot reach the server
	// after all configured retry attempts.
	ErrFailedToConnect = errors.New("failed to connect to mongodb")

	// ErrHealthcheckFailed is returned when a ping against an established
	// connection fails.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")
)
