package history

import "time"

const (
	TypeMenuScan = "menu_scan"
	TypeMeal     = "meal"
)

// Item is a pointer record into the scan-result or meal stores.
// PayloadRef is a lookup key, not an ownership link.
type Item struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	PayloadRef string    `json:"payloadRef"`
	ImageURIs  []string  `json:"imageUris,omitempty"`
}
