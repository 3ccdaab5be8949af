package cart

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// destinationNumber is the storefront's WhatsApp number. The handoff
// is a pre-filled outbound link, fire and forget; there is no
// delivery confirmation.
const (
	waBaseURL         = "https://wa.me/"
	destinationNumber = "573104217788"
)

// Checkout is the handoff package for the external messaging
// collaborator.
type Checkout struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
	Link      string `json:"link"`
	Total     int64  `json:"total"`
}

// Message renders the human-readable order summary, one "<name> x<qty>"
// per line item plus the formatted total.
func (c *Cart) Message() (string, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	parts := make([]string, 0, len(lines))
	for _, ln := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d", ln.Name, ln.Qty))
	}

	return fmt.Sprintf("Hola! Quiero comprar: %s. Total: $%s",
		strings.Join(parts, ", "), FormatPrice(c.Total())), nil
}

// Checkout builds the outbound wa.me link for the current cart. The
// empty-cart notice blocks the handoff; no message is produced.
func (c *Cart) Checkout() (Checkout, error) {
	msg, err := c.Message()
	if err != nil {
		return Checkout{}, err
	}

	return Checkout{
		Reference: "co_" + uuid.NewString(),
		Message:   msg,
		Link:      waBaseURL + destinationNumber + "?text=" + url.QueryEscape(msg),
		Total:     c.Total(),
	}, nil
}

// FormatPrice groups whole currency units with dots: 3200000 becomes
// "3.200.000".
func FormatPrice(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
