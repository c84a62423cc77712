package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotLoggedIn        = errors.New("Unauthorised")
	ErrForbidden          = errors.New("Access denied")
	ErrNotFound           = errors.New("Resource not available")
	ErrEmailAlreadyUsed   = errors.New("User already registered")
	ErrInvalidCredentials = errors.New("Email or password incorrect")
	ErrWrongPassword      = errors.New("Password incorrect")
	ErrNotAnImage         = errors.New("Only images can be uploaded")
	ErrGateway            = errors.New("Upstream provider error")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrClient:             ErrStatusClient,
	ErrNotLoggedIn:        ErrStatusNotLoggedIn,
	ErrForbidden:          ErrStatusNoPermission,
	ErrNotFound:           ErrStatusNotFound,
	ErrEmailAlreadyUsed:   ErrStatusClient,
	ErrInvalidCredentials: ErrStatusClient,
	ErrWrongPassword:      ErrStatusClient,
	ErrNotAnImage:         ErrStatusClient,
	ErrGateway:            ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
