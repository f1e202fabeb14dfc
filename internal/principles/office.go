package principles

import "github.com/jcmexdev/solid-examples/internal/pkg/sink"

type Printer interface {
	Print(content string)
}

type Scanner interface {
	Scan(content string)
}

type Faxer interface {
	Fax(content string)
}

var (
	_ Printer = (*AllInOnePrinter)(nil)
	_ Scanner = (*AllInOnePrinter)(nil)
	_ Faxer   = (*AllInOnePrinter)(nil)
	_ Printer = (*BasicPrinter)(nil)
)

type AllInOnePrinter struct {
	out sink.Sink
}

func NewAllInOnePrinter(out sink.Sink) *AllInOnePrinter {
	return &AllInOnePrinter{out: out}
}

func (p *AllInOnePrinter) Print(content string) { p.out.Write("Printing: " + content) }
func (p *AllInOnePrinter) Scan(content string)  { p.out.Write("Scanning: " + content) }
func (p *AllInOnePrinter) Fax(content string)   { p.out.Write("Faxing: " + content) }

// BasicPrinter only prints, so it only implements Printer.
type BasicPrinter struct {
	out sink.Sink
}

func NewBasicPrinter(out sink.Sink) *BasicPrinter {
	return &BasicPrinter{out: out}
}

func (p *BasicPrinter) Print(content string) { p.out.Write("Printing: " + content) }
