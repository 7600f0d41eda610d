// Package strategy demonstrates the Strategy pattern: an order is paid
// through whichever interchangeable payment strategy it currently holds.
package strategy

import (
	"errors"
	"fmt"
	"io"

	"github.com/shinji-kodama/gof-patterns/internal/format"
)

// ErrNoPaymentStrategy is returned by Checkout when no strategy is set.
var ErrNoPaymentStrategy = errors.New("payment strategy is not set")

type PaymentStrategy interface {
	Pay(w io.Writer, amount float64)
}

type CreditCardPayment struct {
	CardNumber string
}

func (p CreditCardPayment) Pay(w io.Writer, amount float64) {
	fmt.Fprintf(w, "Paying $%s using Credit Card: %s\n", format.Number(amount), p.CardNumber)
}

type PayPalPayment struct {
	Email string
}

func (p PayPalPayment) Pay(w io.Writer, amount float64) {
	fmt.Fprintf(w, "Paying $%s using PayPal account: %s\n", format.Number(amount), p.Email)
}

type CryptoPayment struct {
	WalletAddress string
}

func (p CryptoPayment) Pay(w io.Writer, amount float64) {
	fmt.Fprintf(w, "Paying $%s using Cryptocurrency wallet: %s\n", format.Number(amount), p.WalletAddress)
}

// Order is the context that holds the current strategy.
type Order struct {
	out      io.Writer
	strategy PaymentStrategy
}

func NewOrder(out io.Writer) *Order {
	return &Order{out: out}
}

func (o *Order) SetPaymentStrategy(s PaymentStrategy) {
	o.strategy = s
}

// Checkout pays amount with the current strategy.
func (o *Order) Checkout(amount float64) error {
	if o.strategy == nil {
		return ErrNoPaymentStrategy
	}
	o.strategy.Pay(o.out, amount)
	return nil
}

// Demo checks out three times, switching strategy before each payment.
func Demo(w io.Writer) error {
	order := NewOrder(w)

	for _, step := range []struct {
		strategy PaymentStrategy
		amount   float64
	}{
		{CreditCardPayment{CardNumber: "1234-5678-9012-3456"}, 100.0},
		{PayPalPayment{Email: "user@example.com"}, 200.0},
		{CryptoPayment{WalletAddress: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"}, 300.0},
	} {
		order.SetPaymentStrategy(step.strategy)
		if err := order.Checkout(step.amount); err != nil {
			return err
		}
	}
	return nil
}
