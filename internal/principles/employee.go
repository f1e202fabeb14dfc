package principles

import "github.com/shopspring/decimal"

// Employee is open for new kinds of staff without touching payroll code.
type Employee interface {
	CalculateSalary() decimal.Decimal
}

// Staff is the data every employee kind shares.
type Staff struct {
	Name       string
	BaseSalary decimal.Decimal
}

var (
	permanentRate = decimal.RequireFromString("1.2")
	contractRate  = decimal.RequireFromString("1.1")
	internRate    = decimal.RequireFromString("0.8")
)

type PermanentEmployee struct{ Staff }

func (e PermanentEmployee) CalculateSalary() decimal.Decimal {
	return e.BaseSalary.Mul(permanentRate)
}

type ContractEmployee struct{ Staff }

func (e ContractEmployee) CalculateSalary() decimal.Decimal {
	return e.BaseSalary.Mul(contractRate)
}

type InternEmployee struct{ Staff }

func (e InternEmployee) CalculateSalary() decimal.Decimal {
	return e.BaseSalary.Mul(internRate)
}

// TotalPayroll sums the salaries of all employees.
func TotalPayroll(employees ...Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(e.CalculateSalary())
	}
	return total
}
