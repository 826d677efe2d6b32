package command

import "errors"

// User-facing input errors. The message is shown as-is, so callers return
// these unwrapped.
var (
	ErrParamCount   = errors.New("The number of parameters is wrong!")
	ErrNumberFormat = errors.New("Invalid number format!")
	ErrDateFormat   = errors.New("Invalid expiry date format!\nPlease key in the expiry date in the format dd/mm/yyyy!")
	ErrAlertType    = errors.New("Not an alert type!")
	ErrInvalidInput = errors.New("Invalid Input")
	ErrSeparator    = errors.New("Values cannot contain the '|' character!")
)

const (
	InvalidCommandMessage = "Invalid command!"
	NotFoundMessage       = "Ingredient not found!"
)
