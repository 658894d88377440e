package parser

import "io"

// Parser defines a generic interface for decoding a source response into a list of results
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}

// SingleResultParser defines a generic interface for decoding a source response into a single result
type SingleResultParser[T any] interface {
	Parse(body io.Reader) (T, error)
}
