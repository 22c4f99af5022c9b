package entity

// InvoiceLine is one billed item. Order across a slice of lines is significant
// and preserved through composition.
type InvoiceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// SumLines returns the arithmetic total of the line amounts in input order.
// The total is never stored; it is always recomputed from the lines.
func SumLines(lines []InvoiceLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Amount
	}
	return total
}
