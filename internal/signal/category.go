package signal

import "errors"

// Category is the closed classification of a failure's nature. Unspecified is
// the explicit fallback; commands never invent categories beyond this set.
type Category int

const (
	Unspecified Category = iota
	Connection
	InvalidOperation
	Permission
	ResourceLimit
)

func (c Category) String() string {
	switch c {
	case Connection:
		return "connection"
	case InvalidOperation:
		return "invalid-operation"
	case Permission:
		return "permission"
	case ResourceLimit:
		return "resource-limit"
	default:
		return "not-specified"
	}
}

// Categorized is implemented by errors that carry their own classification.
type Categorized interface {
	error
	Category() Category
}

// CategoryOf walks err's wrap chain and returns the first carried category,
// or Unspecified.
func CategoryOf(err error) Category {
	var c Categorized
	if errors.As(err, &c) {
		return c.Category()
	}
	return Unspecified
}

// CategorizedError attaches a Category to an existing error so thin commands
// can classify failures coming from APIs that do not speak our taxonomy.
type CategorizedError struct {
	Err  error
	Kind Category
}

func Categorize(err error, kind Category) *CategorizedError {
	return &CategorizedError{Err: err, Kind: kind}
}

func (e *CategorizedError) Error() string {
	return e.Err.Error()
}

func (e *CategorizedError) Unwrap() error {
	return e.Err
}

func (e *CategorizedError) Category() Category {
	return e.Kind
}
