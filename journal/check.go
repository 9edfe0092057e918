package journal

import (
	"fmt"
	"time"
)

// OrderViolation reports a transaction dated earlier than one that precedes
// it in the file.
type OrderViolation struct {
	Line     int
	Date     time.Time
	Previous time.Time
}

func (v OrderViolation) String() string {
	return fmt.Sprintf("entry on line %d: %s < %s",
		v.Line, v.Date.Format("2006-01-02"), v.Previous.Format("2006-01-02"))
}

// CheckOrder reports every transaction that breaks ascending date order.
// An empty result means the file is correctly ordered.
func CheckOrder(txns []Transaction) []OrderViolation {
	var violations []OrderViolation

	var previous time.Time
	for i, txn := range txns {
		if i > 0 && txn.Date.Before(previous) {
			violations = append(violations, OrderViolation{
				Line:     txn.Line,
				Date:     txn.Date,
				Previous: previous,
			})
			continue
		}
		previous = txn.Date
	}

	return violations
}
