package market

import "strings"

// NormalizeSymbol canonicalizes an instrument symbol: trimmed, upper-case.
// Every boundary that accepts a symbol from outside runs it through here so
// position lookups and universe membership agree on the key.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
