// Package calc implements the four-function calculator that feeds amounts
// into the ledger form. It is a synchronous state machine: every event runs
// to completion and leaves the calculator in a well-defined state.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	OpNone     Op = ""
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
)

// maxInputLen caps digit entry, not results.
const maxInputLen = 12

// resultPrecision suppresses division tails in chained results.
const resultPrecision = 8

// Op is a pending arithmetic operation.
type Op string

var ErrDivisionByZero = errors.New("division by zero")

func (o Op) Validate() error {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return nil
	default:
		return fmt.Errorf("unknown operator %q", string(o))
	}
}

// Calculator accumulates digit entry into currentInput and evaluates the
// pending operation against previousOperand. When awaitingReset is set the
// next digit entry replaces the display instead of appending.
type Calculator struct {
	currentInput    string
	previousOperand string
	pendingOp       Op
	awaitingReset   bool
}

func New() *Calculator {
	return &Calculator{currentInput: "0"}
}

// Digit appends a digit 0-9 to the current input. Entry is capped at
// twelve characters; a lone zero is replaced rather than extended.
func (c *Calculator) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}
	ch := string(rune('0' + d))
	if c.awaitingReset {
		c.currentInput = ch
		c.awaitingReset = false
		return
	}
	if c.currentInput == "0" {
		c.currentInput = ch
		return
	}
	if len(c.currentInput) < maxInputLen {
		c.currentInput += ch
	}
}

// Decimal appends the decimal point, once.
func (c *Calculator) Decimal() {
	if c.awaitingReset {
		c.currentInput = "0"
		c.awaitingReset = false
	}
	if !strings.Contains(c.currentInput, ".") {
		c.currentInput += "."
	}
}

// Clear resets only the current input (the C key).
func (c *Calculator) Clear() {
	c.currentInput = "0"
	c.awaitingReset = false
}

// AllClear resets the whole machine to its initial state (the AC key).
func (c *Calculator) AllClear() {
	c.currentInput = "0"
	c.previousOperand = ""
	c.pendingOp = OpNone
	c.awaitingReset = false
}

// ToggleSign negates the current input.
func (c *Calculator) ToggleSign() {
	c.currentInput = c.parseCurrent().Neg().String()
}

// Percent divides the current input by 100.
func (c *Calculator) Percent() {
	c.currentInput = c.parseCurrent().Div(decimal.NewFromInt(100)).String()
}

// Apply stores op as the pending operation. A previously pending operation
// is evaluated first, so chains like 2 + 3 * 4 resolve left to right.
func (c *Calculator) Apply(op Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	if c.pendingOp != OpNone {
		if err := c.evaluate(); err != nil {
			return err
		}
	}
	c.previousOperand = c.currentInput
	c.pendingOp = op
	c.awaitingReset = true
	return nil
}

// Equals evaluates the pending operation, if any, and clears it.
func (c *Calculator) Equals() error {
	if c.pendingOp == OpNone {
		return nil
	}
	if err := c.evaluate(); err != nil {
		return err
	}
	c.pendingOp = OpNone
	return nil
}

// Value exposes the current numeric value, unformatted, for the ledger
// form to read into its amount field.
func (c *Calculator) Value() decimal.Decimal {
	return c.parseCurrent()
}

// Display renders the current input with thousands grouping applied to
// the integer part only. Pure projection, no state change.
func (c *Calculator) Display() string {
	intPart := c.currentInput
	rest := ""
	if i := strings.Index(c.currentInput, "."); i >= 0 {
		intPart, rest = c.currentInput[:i], c.currentInput[i:]
	}
	return groupThousands(intPart) + rest
}

func (c *Calculator) evaluate() error {
	if c.previousOperand == "" {
		return nil
	}
	prev, err := decimal.NewFromString(c.previousOperand)
	if err != nil {
		return nil
	}
	cur := c.parseCurrent()

	var result decimal.Decimal
	switch c.pendingOp {
	case OpAdd:
		result = prev.Add(cur)
	case OpSubtract:
		result = prev.Sub(cur)
	case OpMultiply:
		result = prev.Mul(cur)
	case OpDivide:
		if cur.IsZero() {
			c.AllClear()
			return ErrDivisionByZero
		}
		result = prev.Div(cur)
	default:
		return nil
	}

	if result.Exponent() < -resultPrecision {
		result = result.Round(resultPrecision)
	}
	c.currentInput = result.String()
	c.awaitingReset = true
	return nil
}

// parseCurrent tolerates entry-in-progress forms like "5." or "-".
func (c *Calculator) parseCurrent() decimal.Decimal {
	s := strings.TrimSuffix(c.currentInput, ".")
	if s == "" || s == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
