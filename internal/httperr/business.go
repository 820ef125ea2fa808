package httperr

import "errors"

// BusinessError is a domain-level failure identified by a stable code.
// Use cases return these; only handlers translate them into HTTP statuses.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
