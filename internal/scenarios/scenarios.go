// Package scenarios holds the fixed demo runs, one per example, each packaged
// as a coordinator.Step so cmd/solid-demos can run them in sequence.
package scenarios

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/solid-examples/internal/coordinator"
	deliveryservice "github.com/jcmexdev/solid-examples/internal/delivery-service/app"
	"github.com/jcmexdev/solid-examples/internal/garage"
	"github.com/jcmexdev/solid-examples/internal/library"
	notificationservice "github.com/jcmexdev/solid-examples/internal/notification-service/app"
	"github.com/jcmexdev/solid-examples/internal/order-service/domain"
	paymentservice "github.com/jcmexdev/solid-examples/internal/payment-service/app"
	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
	"github.com/jcmexdev/solid-examples/internal/principles"
)

const (
	NameLibrary    = "library"
	NameGarage     = "garage"
	NameOrders     = "orders"
	NamePrinciples = "principles"
)

// All returns every scenario in presentation order.
func All(out sink.Sink) []coordinator.Step {
	return []coordinator.Step{
		coordinator.NewStepFunc(NameLibrary, func(context.Context) error { Library(out); return nil }),
		coordinator.NewStepFunc(NameGarage, func(context.Context) error { Garage(out); return nil }),
		coordinator.NewStepFunc(NameOrders, func(context.Context) error { return Orders(out) }),
		coordinator.NewStepFunc(NamePrinciples, func(context.Context) error { Principles(out); return nil }),
	}
}

func Library(out sink.Sink) {
	lib := library.New(out)

	book1 := library.NewBook("1", "A1", "1111", 3)
	book2 := library.NewBook("2", "A2", "2222", 5)
	lib.AddBook(book1)
	lib.AddBook(book2)

	reader1 := library.NewReader("Oscar", 1)
	reader2 := library.NewReader("Ahat", 2)
	lib.RegisterReader(reader1)
	lib.RegisterReader(reader2)

	lib.ListBooks()
	lib.ListReaders()

	lib.LendBook("1111", 1)
	lib.ReturnBook("1111", 1)

	lib.RemoveBook(book2)
	lib.ListBooks()

	lib.RemoveReader(reader2)
	lib.ListReaders()
}

func Garage(out sink.Sink) {
	car1 := garage.NewCar("Toyota", "1", 2024, 4, "A", out)
	car2 := garage.NewCar("Ford", "2", 2023, 2, "M", out)
	bike1 := garage.NewMotorcycle("Yamaha", "3", 2022, "sport", false, out)

	garage1 := garage.NewGarage(out)
	garage2 := garage.NewGarage(out)
	fleet := garage.NewFleet(out)

	garage1.AddVehicle(car1)
	garage1.AddVehicle(bike1)
	garage2.AddVehicle(car2)

	fleet.AddGarage(garage1)
	fleet.AddGarage(garage2)
	fleet.ListGarages()

	garage1.RemoveVehicle(bike1)
	fleet.RemoveGarage(garage2)
	fleet.ListGarages()
}

func Orders(out sink.Sink) error {
	order := domain.NewOrder(uuid.NewString())
	order.AddItem("Item 1", 1, decimal.NewFromInt(50))
	order.AddItem("Item 2", 2, decimal.NewFromInt(100))

	order.Payment = paymentservice.NewCreditCardPayment(out)
	order.Delivery = deliveryservice.NewCourierDelivery(out)

	order.CalculatePrice(domain.NewPercentageDiscount(decimal.NewFromInt(10)))
	if err := order.ProcessOrder(); err != nil {
		return fmt.Errorf("process order: %w", err)
	}

	notifications := notificationservice.NewNotificationService(notificationservice.NewEmailNotification(out))
	notifications.NotifyClient("Order placed")
	return nil
}

func Principles(out sink.Sink) {
	purchase := principles.Purchase{ProductName: "lamp", Quantity: 2, Price: decimal.NewFromInt(40)}
	total := principles.PriceCalculator{}.CalculateTotalPrice(purchase)
	out.Write(fmt.Sprintf("Total for %d x %s: %s", purchase.Quantity, purchase.ProductName, total.StringFixed(2)))
	principles.NewPaymentProcessor(out).ProcessPayment("credit card")
	principles.NewEmailService(out).SendConfirmationEmail("client@example.com")

	base := decimal.NewFromInt(1000)
	staff := []principles.Employee{
		principles.PermanentEmployee{Staff: principles.Staff{Name: "Ann", BaseSalary: base}},
		principles.ContractEmployee{Staff: principles.Staff{Name: "Bob", BaseSalary: base}},
		principles.InternEmployee{Staff: principles.Staff{Name: "Eve", BaseSalary: base}},
	}
	out.Write("Payroll: " + principles.TotalPayroll(staff...).StringFixed(2))

	var devices []principles.Printer
	devices = append(devices, principles.NewAllInOnePrinter(out), principles.NewBasicPrinter(out))
	for _, d := range devices {
		d.Print("report")
		if s, ok := d.(principles.Scanner); ok {
			s.Scan("report")
		}
		if f, ok := d.(principles.Faxer); ok {
			f.Fax("report")
		}
	}

	sms := notificationservice.NewNotificationService(notificationservice.NewSMSNotification(out))
	sms.NotifyClient("Your invoice is ready")
}
