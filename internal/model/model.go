package model

// Severity classifies a pending yes/no decision for rendering purposes.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Complement is an add-on offered with a product (e.g. extra cheese).
// Read-only in this client; complements are managed elsewhere.
type Complement struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Price  `json:"price"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Active      bool   `json:"isActive"`

	// Canonical owning-category reference, normalized at the API boundary.
	// The server returns the category variously as {id,name}, {categoryId,
	// categoryName} or a bare name string; consumers only ever see this pair.
	CategoryID   string `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`

	Complements []Complement `json:"complements"`
}

type Category struct {
	ID       string    `json:"categoryId"`
	Name     string    `json:"categoryName"`
	Products []Product `json:"products"`
}

// Notification is a transient toast message. Entering/Leaving drive the
// appear -> steady -> disappear lifecycle; IDs increase monotonically.
type Notification struct {
	ID       int    `json:"id"`
	Message  string `json:"message"`
	Entering bool   `json:"entering"`
	Leaving  bool   `json:"leaving"`
}
