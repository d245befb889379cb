package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a query failed
type ErrorKind int

const (
	// KindTimeout means no response arrived within the configured budget
	KindTimeout ErrorKind = iota + 1

	// KindTransport covers DNS, connection and body-decoding failures
	KindTransport

	// KindServerRejected means the backend answered with a non-2xx status
	KindServerRejected

	// KindCanceled means the caller abandoned the query
	KindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindServerRejected:
		return "server_rejected"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

const (
	genericServerDetail = "Erro na comunicação com o servidor"
	timeoutDetail       = "A resposta está demorando muito. Tente novamente."
	canceledDetail      = "Consulta cancelada"
)

// errQueryTimeout is the cancellation cause set when the query budget elapses.
var errQueryTimeout = errors.New("query timeout")

// QueryError is the single failure type returned by SendQuery
type QueryError struct {
	Kind       ErrorKind
	Detail     string
	StatusCode int // set for KindServerRejected
	Err        error
}

func (e *QueryError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "Timeout: " + e.Detail
	case KindTransport:
		return "Erro de conexão: " + e.Detail
	case KindServerRejected:
		return e.Detail
	case KindCanceled:
		return e.Detail
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *QueryError anywhere in err's chain, or 0
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return 0
}

// IsTimeout reports whether err is a query timeout
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }

// IsTransport reports whether err is a network-level failure
func IsTransport(err error) bool { return KindOf(err) == KindTransport }

// IsServerRejected reports whether the backend refused the query
func IsServerRejected(err error) bool { return KindOf(err) == KindServerRejected }

// IsCanceled reports whether the caller canceled the query
func IsCanceled(err error) bool { return KindOf(err) == KindCanceled }
