package httperr

import "errors"

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrBusinessMsg lleva además un mensaje para el usuario
// (p. ej. la hora del fichaje ya abierto).
func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessMessage(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
