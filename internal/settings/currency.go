package settings

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaze-bot/finquest-budget-manager/internal/listener"
	"github.com/Jaze-bot/finquest-budget-manager/internal/log"
)

// DefaultCurrency is the fallback for missing or unknown currency codes.
const DefaultCurrency = "PHP"

// symbols maps each supported currency code to its display symbol.
var symbols = map[string]string{
	"PHP": "₱",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// CurrencyCodes lists the supported codes for selection widgets.
func CurrencyCodes() []string {
	return []string{"PHP", "USD", "EUR", "GBP", "JPY"}
}

// CurrencyChange is the payload delivered to currency listeners.
type CurrencyChange struct {
	Code   string
	Symbol string
}

// Currency is the process-wide display currency. Only the symbol and
// label switch; amounts are never converted.
type Currency struct {
	mu        sync.Mutex
	code      string
	symbol    string
	file      *File
	listeners *listener.Registry[CurrencyChange]
	logger    *log.Logger
}

// LoadCurrency reads CURRENCY from the settings file. Missing files and
// unknown codes silently resolve to the default.
func LoadCurrency(file *File, logger *log.Logger) *Currency {
	c := &Currency{
		code:      DefaultCurrency,
		symbol:    symbols[DefaultCurrency],
		file:      file,
		listeners: listener.NewRegistry[CurrencyChange](),
		logger:    logger.WithComponent("currency"),
	}

	code := normalizeCode(file.Get(KeyCurrency, DefaultCurrency))
	c.code = code
	c.symbol = symbols[code]
	return c
}

// normalizeCode maps any string onto a supported code, defaulting unknown
// values rather than erroring.
func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := symbols[code]; !ok {
		return DefaultCurrency
	}
	return code
}

// Get returns the current currency code.
func (c *Currency) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// Symbol returns the display symbol for the current currency.
func (c *Currency) Symbol() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbol
}

// Set switches the display currency, persists it, and notifies listeners.
// Unknown codes fall back to the default; they are a valid Set, not an
// error, so listeners still fire with the resolved code.
func (c *Currency) Set(code string) {
	resolved := normalizeCode(code)

	c.mu.Lock()
	c.code = resolved
	c.symbol = symbols[resolved]
	change := CurrencyChange{Code: c.code, Symbol: c.symbol}
	c.mu.Unlock()

	if err := c.file.Set(KeyCurrency, resolved); err != nil {
		c.logger.Error("Failed to persist currency", "error", err, "code", resolved)
	}

	c.listeners.Notify(change)
}

// Format renders an amount with the current symbol and thousands
// grouping, e.g. "₱1,234.56".
func (c *Currency) Format(amount decimal.Decimal) string {
	return c.Symbol() + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts comma separators into a plain fixed-point
// decimal string such as "-1234567.89".
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// AddListener registers fn under id; registration is idempotent.
func (c *Currency) AddListener(id string, fn func(CurrencyChange)) {
	c.listeners.Add(id, fn)
}

// RemoveListener deregisters id; unknown ids are a no-op.
func (c *Currency) RemoveListener(id string) {
	c.listeners.Remove(id)
}
