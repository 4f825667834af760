package model

import (
	"reflect"
	"testing"
)

func TestLicenseRecord_MissingFields(t *testing.T) {
	record := &LicenseRecord{OwnerName: "Ana", OwnerEmail: "  ", Password: "pw"}

	expected := []string{"id", "email"}
	if got := record.MissingFields(); !reflect.DeepEqual(got, expected) {
		t.Errorf("MissingFields() = %v, expected %v", got, expected)
	}

	if record.IsComplete() {
		t.Error("Record with blank fields should not be complete")
	}

	record.OwnerID = "42"
	record.OwnerEmail = "ana@example.com"
	if !record.IsComplete() {
		t.Errorf("Record should be complete, missing %v", record.MissingFields())
	}
}
