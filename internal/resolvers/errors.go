package resolvers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrNoDataFound         = errors.New("no data found")
	ErrMalformedData       = errors.New("malformed data")
)

// ResolutionError - ошибка разрешения ссылки, Kind один из Err* выше
type ResolutionError struct {
	Kind error
	Op   string
	Err  error
}

func NewError(kind error, op string, err error) *ResolutionError {
	return &ResolutionError{Kind: kind, Op: op, Err: err}
}

func (e *ResolutionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}

	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *ResolutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// StatusCode переводит ошибку разрешения в HTTP статус
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUpstreamUnreachable):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoDataFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Kind возвращает тип ошибки либо nil, если ошибка не из таксономии
func Kind(err error) error {
	for _, k := range []error{ErrInvalidInput, ErrUpstreamUnreachable, ErrNoDataFound, ErrMalformedData} {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}
