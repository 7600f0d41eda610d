// Package adapter demonstrates the Adapter pattern: two payment providers
// with incompatible method names are wrapped so a single processor can
// charge through either of them.
package adapter

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/gof-patterns/internal/format"
)

// PaymentGateway is the interface the processor expects.
type PaymentGateway interface {
	Pay(amount float64)
}

// PayPal is a third-party client whose API does not match PaymentGateway.
type PayPal struct {
	out io.Writer
}

func NewPayPal(out io.Writer) *PayPal {
	return &PayPal{out: out}
}

func (p *PayPal) SendPayment(amount float64) {
	fmt.Fprintf(p.out, "Paying $%s using PayPal.\n", format.Number(amount))
}

// Stripe is a third-party client whose API does not match PaymentGateway.
type Stripe struct {
	out io.Writer
}

func NewStripe(out io.Writer) *Stripe {
	return &Stripe{out: out}
}

func (s *Stripe) MakePayment(amount float64) {
	fmt.Fprintf(s.out, "Paying $%s using Stripe.\n", format.Number(amount))
}

// PayPalAdapter maps Pay onto PayPal.SendPayment.
type PayPalAdapter struct {
	payPal *PayPal
}

func NewPayPalAdapter(p *PayPal) *PayPalAdapter {
	return &PayPalAdapter{payPal: p}
}

func (a *PayPalAdapter) Pay(amount float64) {
	a.payPal.SendPayment(amount)
}

// StripeAdapter maps Pay onto Stripe.MakePayment.
type StripeAdapter struct {
	stripe *Stripe
}

func NewStripeAdapter(s *Stripe) *StripeAdapter {
	return &StripeAdapter{stripe: s}
}

func (a *StripeAdapter) Pay(amount float64) {
	a.stripe.MakePayment(amount)
}

// PaymentProcessor charges through whichever gateway it was given.
type PaymentProcessor struct {
	gateway PaymentGateway
}

func NewPaymentProcessor(g PaymentGateway) *PaymentProcessor {
	return &PaymentProcessor{gateway: g}
}

func (p *PaymentProcessor) ProcessPayment(amount float64) {
	p.gateway.Pay(amount)
}

// GatewayFunc lets an ordinary function act as a PaymentGateway.
type GatewayFunc func(amount float64)

func (f GatewayFunc) Pay(amount float64) { f(amount) }

// Demo charges 100 through PayPal and 200 through Stripe.
func Demo(w io.Writer) error {
	processor := NewPaymentProcessor(NewPayPalAdapter(NewPayPal(w)))
	processor.ProcessPayment(100.00)

	processor = NewPaymentProcessor(NewStripeAdapter(NewStripe(w)))
	processor.ProcessPayment(200.00)
	return nil
}
