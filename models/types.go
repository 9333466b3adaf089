package models

// Domain types

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Country struct {
	Code string `json:"country_code"`
	Name string `json:"country_name"`
}

type VisitedCountry struct {
	UserID      int64  `json:"user_id"`
	CountryCode string `json:"country_code"`
}

// View payloads

// IndexPage is the data rendered by the main map view.
type IndexPage struct {
	Countries   []string
	Total       int
	Users       []User
	CurrentUser User
	Color       string
}

// NewUserPage is the data rendered by the new-user form.
type NewUserPage struct {
	Colors []string
}

// UserColors are the accent colors offered on the new-user form. The store
// accepts any string.
var UserColors = []string{
	"red", "orange", "yellow", "olive", "green", "teal", "blue", "violet", "purple", "pink",
}

// Form field names

const (
	FieldCountry = "country"
	FieldAdd     = "add"
	FieldUser    = "user"
	FieldName    = "name"
	FieldColor   = "color"

	// AddNewUser is the value of the "add" field that asks for the new-user form.
	AddNewUser = "new"
)

// Status response

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
