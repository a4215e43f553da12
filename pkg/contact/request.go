package contact

import "strings"

// Request is one contact-form submission. All three fields are required;
// a field holding only whitespace counts as missing.
type Request struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Message string `json:"message" form:"message"`
}

// MissingFields returns the form names of the fields that are empty or whitespace only.
func (r Request) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}
