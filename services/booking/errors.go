package booking

import "fmt"

type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newConfigError(msg string) error {
	return &EngineError{
		Code:    "configError",
		Message: msg,
	}
}
