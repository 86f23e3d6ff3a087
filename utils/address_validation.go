package utils

import (
	"regexp"
	"strings"
)

var (
	addressLineRegex  = regexp.MustCompile(`^[a-zA-Z0-9\s,.'#\-/]+$`)
	addressLine2Regex = regexp.MustCompile(`^[a-zA-Z0-9\s,.'#\-/]*$`)
	cityRegex         = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	pincodeRegex      = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// ValidateAddressFields validates address fields according to business rules
func ValidateAddressFields(line1, line2, city, state, country, pincode string) []FieldValidationError {
	errs := []FieldValidationError{}

	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		errs = append(errs, FieldValidationError{"address_line1", "Address Line 1 is required"})
	} else {
		if len(line1) > 150 {
			errs = append(errs, FieldValidationError{"address_line1", "Address Line 1 must not exceed 150 characters"})
		}
		if !addressLineRegex.MatchString(line1) {
			errs = append(errs, FieldValidationError{"address_line1", "Address Line 1 contains invalid characters"})
		}
	}

	line2 = strings.TrimSpace(line2)
	if len(line2) > 0 {
		if len(line2) > 100 {
			errs = append(errs, FieldValidationError{"address_line2", "Address Line 2 must not exceed 100 characters"})
		}
		if !addressLine2Regex.MatchString(line2) {
			errs = append(errs, FieldValidationError{"address_line2", "Address Line 2 contains invalid characters"})
		}
	}

	city = strings.TrimSpace(city)
	if city == "" {
		errs = append(errs, FieldValidationError{"city", "City is required"})
	} else {
		if len(city) > 100 {
			errs = append(errs, FieldValidationError{"city", "City must not exceed 100 characters"})
		}
		if !cityRegex.MatchString(city) {
			errs = append(errs, FieldValidationError{"city", "City must only contain letters and spaces"})
		}
	}

	state = strings.TrimSpace(state)
	if state == "" {
		errs = append(errs, FieldValidationError{"state", "State is required"})
	} else if len(state) > 100 {
		errs = append(errs, FieldValidationError{"state", "State must not exceed 100 characters"})
	}

	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		errs = append(errs, FieldValidationError{"pincode", "Pincode is required"})
	} else if strings.EqualFold(strings.TrimSpace(country), "india") || strings.TrimSpace(country) == "" {
		if !pincodeRegex.MatchString(pincode) {
			errs = append(errs, FieldValidationError{"pincode", "Pincode must be a valid 6-digit Indian PIN (e.g., 600028)"})
		}
	}

	return errs
}
