package principles

import (
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

// houseDiscount is the flat 10% every Purchase gets.
var houseDiscount = decimal.RequireFromString("0.9")

// Purchase is a single-product order. It only carries data; pricing, payment
// and confirmation each live in their own type.
type Purchase struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

type PriceCalculator struct{}

func (PriceCalculator) CalculateTotalPrice(p Purchase) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))).Mul(houseDiscount)
}

type PaymentProcessor struct {
	out sink.Sink
}

func NewPaymentProcessor(out sink.Sink) *PaymentProcessor {
	return &PaymentProcessor{out: out}
}

func (p *PaymentProcessor) ProcessPayment(details string) {
	p.out.Write("Payment processed using: " + details)
}

type EmailService struct {
	out sink.Sink
}

func NewEmailService(out sink.Sink) *EmailService {
	return &EmailService{out: out}
}

func (s *EmailService) SendConfirmationEmail(address string) {
	s.out.Write("Confirmation email sent to: " + address)
}
