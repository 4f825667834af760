package model

import "strings"

// LicenseRecord holds the license owner form. It lives in screen state only.
type LicenseRecord struct {
	OwnerName  string
	OwnerID    string
	OwnerEmail string
	Password   string
	Locked     bool
}

// MissingFields returns the names of blank fields in form order
func (r *LicenseRecord) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.OwnerName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.OwnerID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(r.OwnerEmail) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Password) == "" {
		missing = append(missing, "password")
	}
	return missing
}

// IsComplete returns true if every field is filled in
func (r *LicenseRecord) IsComplete() bool {
	return len(r.MissingFields()) == 0
}
