package impl

import (
	"fmt"
	"strings"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// formatMoney renders a minor-unit amount with thousands separators.
func formatMoney(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}

	return b.String()
}

// shortID renders the first segment of a UUID, enough for customers to quote
// back to support.
func shortID(id uuid.UUID) string {
	return strings.SplitN(id.String(), "-", 2)[0]
}

// itemLabel renders a cart line's product name with its variant, if any.
func itemLabel(item entity.CartItem) string {
	if item.Variant == "" {
		return item.Name
	}

	return fmt.Sprintf("%s (%s)", item.Name, item.Variant)
}
