// Package linsys solves systems of linear equations exactly.
//
// Elimination runs over any Scalar type; with an exact fraction type such as
// rat.Rat no rounding ever happens, so a zero pivot is truly zero.
package linsys

import (
	"errors"
	"fmt"
	"slices"
)

// @Author KHighness
// @Update 2026-10-19

// ErrIncompatible is returned when the shape of the system cannot be solved
// for: fewer equations than variables, a right-hand side that does not match
// the number of rows, or rows of different lengths.
var ErrIncompatible = errors.New("linsys: lefts are incompatible with rights")

// ErrCannotSolve matches every *CannotSolveError through errors.Is.
var ErrCannotSolve = errors.New("linsys: cannot solve for variable")

// CannotSolveError reports that no remaining equation has a non-zero
// coefficient for variable Var.
type CannotSolveError struct {
	Var int
}

func (e *CannotSolveError) Error() string {
	return fmt.Sprintf("linsys: failed to determine the variable at index %d", e.Var)
}

// Is makes errors.Is(err, ErrCannotSolve) hold.
func (e *CannotSolveError) Is(target error) bool { return target == ErrCannotSolve }

// Scalar is an element of a field with exact arithmetic.
type Scalar[T any] interface {
	IsZero() bool
	// Inverse returns the multiplicative inverse.
	Inverse() T
	Add(T) T
	Sub(T) T
	Mul(T) T
}

// Equations is the system Lefts · x = Rights, one row per equation and one
// column per variable. Solve works in place.
type Equations[T Scalar[T]] struct {
	Lefts  [][]T
	Rights []T
}

// Vars returns the number of variables.
func (e *Equations[T]) Vars() int {
	if len(e.Lefts) == 0 {
		return 0
	}
	return len(e.Lefts[0])
}

func (e *Equations[T]) validate() error {
	vars, eqs := e.Vars(), len(e.Rights)
	if len(e.Lefts) != eqs || vars > eqs {
		return ErrIncompatible
	}
	for _, row := range e.Lefts {
		if len(row) != vars {
			return ErrIncompatible
		}
	}
	return nil
}

// Solve runs Gaussian elimination with partial pivoting followed by
// back-substitution. On success Rights[:Vars()] holds the solution and the
// first Vars() rows of Lefts form the identity.
//
// Equations beyond the number of variables take part in elimination but are
// not checked for consistency.
func (e *Equations[T]) Solve() error {
	if err := e.validate(); err != nil {
		return err
	}
	vars, eqs := e.Vars(), len(e.Rights)

	for v := 0; v < vars; v++ {
		pivot := -1
		for i := v; i < eqs; i++ {
			if !e.Lefts[i][v].IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return &CannotSolveError{Var: v}
		}

		e.scaleRow(pivot, e.Lefts[pivot][v].Inverse())
		e.swapRows(v, pivot)
		for i := v + 1; i < eqs; i++ {
			e.eliminate(i, v, v)
		}
	}

	for v := vars - 1; v >= 0; v-- {
		for i := v - 1; i >= 0; i-- {
			e.eliminate(i, v, v)
		}
	}
	return nil
}

// eliminate clears column col of row by subtracting a multiple of the pivot
// row, whose coefficient in col is one.
func (e *Equations[T]) eliminate(row, pivot, col int) {
	k := e.Lefts[row][col]
	if k.IsZero() {
		return
	}
	for j := range e.Lefts[row] {
		e.Lefts[row][j] = e.Lefts[row][j].Sub(k.Mul(e.Lefts[pivot][j]))
	}
	e.Rights[row] = e.Rights[row].Sub(k.Mul(e.Rights[pivot]))
}

func (e *Equations[T]) scaleRow(row int, k T) {
	for j := range e.Lefts[row] {
		e.Lefts[row][j] = e.Lefts[row][j].Mul(k)
	}
	e.Rights[row] = e.Rights[row].Mul(k)
}

func (e *Equations[T]) swapRows(a, b int) {
	if a == b {
		return
	}
	e.Lefts[a], e.Lefts[b] = e.Lefts[b], e.Lefts[a]
	e.Rights[a], e.Rights[b] = e.Rights[b], e.Rights[a]
}

// Solve solves lefts · x = rights without modifying its arguments.
func Solve[T Scalar[T]](lefts [][]T, rights []T) ([]T, error) {
	eq := Equations[T]{
		Lefts:  make([][]T, len(lefts)),
		Rights: slices.Clone(rights),
	}
	for i, row := range lefts {
		eq.Lefts[i] = slices.Clone(row)
	}
	if err := eq.Solve(); err != nil {
		return nil, err
	}
	return eq.Rights, nil
}

// SolveSystem is Solve with every failure collapsed to false.
func SolveSystem[T Scalar[T]](lefts [][]T, rights []T) ([]T, bool) {
	x, err := Solve(lefts, rights)
	if err != nil {
		return nil, false
	}
	return x, true
}
