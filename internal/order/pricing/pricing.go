package pricing

import "tiffin/internal/domain"

// Engine computes order totals from validated order lines. It trusts the
// unit prices it is given; price correctness is the caller's concern.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Total(lines []domain.OrderLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
