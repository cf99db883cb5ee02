package common

import (
	"go-bank-account/logger"

	"github.com/sirupsen/logrus"
)

// AppError ties a failure to the script step that caused it.
type AppError struct {
	Step    int    `json:"step"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(step int, message string, err error) *AppError {
	return &AppError{
		Step:    step,
		Message: message,
		Err:     err,
	}
}

// Log writes the error with its step and cause. A nil entry logs through the
// shared logger.
func (e *AppError) Log(entry *logrus.Entry) {
	if entry == nil {
		entry = logrus.NewEntry(logger.Log)
	}

	fields := logrus.Fields{"step": e.Step}
	if e.Err != nil {
		fields["internal_error"] = e.Err.Error()
	}
	entry.WithFields(fields).Error(e.Message)
}
