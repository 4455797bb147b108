package models

// ReturnValue is the outcome of a data access operation
type ReturnValue int

const (
	OK ReturnValue = iota
	NotExists
	AlreadyExists
	Error
	BadParams
)

func (r ReturnValue) String() string {
	switch r {
	case OK:
		return "OK"
	case NotExists:
		return "NOT_EXISTS"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	case BadParams:
		return "BAD_PARAMS"
	default:
		return "ERROR"
	}
}
