package entities

import (
	"math/rand/v2"

	"github.com/paologalligit/showtime/constant"
)

// CodeSource draws a value in [0, n).
type CodeSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Customer is the identity a seat is booked under. Codes are random and may
// collide between customers, so reports always show the name next to it.
type Customer struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

func NewCustomer(name string) *Customer {
	return NewCustomerWithSource(name, globalSource{})
}

func NewCustomerWithSource(name string, src CodeSource) *Customer {
	span := constant.CODE_MAX - constant.CODE_MIN + 1
	return &Customer{
		Name: name,
		Code: src.IntN(span) + constant.CODE_MIN,
	}
}
