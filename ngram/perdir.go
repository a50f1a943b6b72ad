package ngram

import "github.com/forestrie/go-ngramcps/tm"

// perDir holds one value for each head direction.
type perDir[T any] [2]T

func newPerDir[T any](mk func() T) perDir[T] {
	return perDir[T]{tm.Left: mk(), tm.Right: mk()}
}

func (p *perDir[T]) at(d tm.Dir) *T { return &p[d] }
