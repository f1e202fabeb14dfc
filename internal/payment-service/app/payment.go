package paymentservice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

// Method names as accepted on the wire.
const (
	MethodCreditCard   = "credit_card"
	MethodPayPal       = "paypal"
	MethodBankTransfer = "bank_transfer"
)

var ErrUnknownMethod = errors.New("unknown payment method")

var (
	_ domain.Payment = (*CreditCardPayment)(nil)
	_ domain.Payment = (*PayPalPayment)(nil)
	_ domain.Payment = (*BankTransferPayment)(nil)
)

type CreditCardPayment struct {
	out sink.Sink
}

func NewCreditCardPayment(out sink.Sink) *CreditCardPayment {
	return &CreditCardPayment{out: out}
}

func (p *CreditCardPayment) ProcessPayment(amount decimal.Decimal) {
	p.out.Write(fmt.Sprintf("%s paid by credit card", amount.StringFixed(2)))
}

type PayPalPayment struct {
	out sink.Sink
}

func NewPayPalPayment(out sink.Sink) *PayPalPayment {
	return &PayPalPayment{out: out}
}

func (p *PayPalPayment) ProcessPayment(amount decimal.Decimal) {
	p.out.Write(fmt.Sprintf("%s paid via PayPal", amount.StringFixed(2)))
}

type BankTransferPayment struct {
	out sink.Sink
}

func NewBankTransferPayment(out sink.Sink) *BankTransferPayment {
	return &BankTransferPayment{out: out}
}

func (p *BankTransferPayment) ProcessPayment(amount decimal.Decimal) {
	p.out.Write(fmt.Sprintf("%s paid by bank transfer", amount.StringFixed(2)))
}

// ForMethod returns the payment method registered under name.
func ForMethod(name string, out sink.Sink) (domain.Payment, error) {
	switch name {
	case MethodCreditCard:
		return NewCreditCardPayment(out), nil
	case MethodPayPal:
		return NewPayPalPayment(out), nil
	case MethodBankTransfer:
		return NewBankTransferPayment(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
