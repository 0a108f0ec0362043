// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, constants.OutputFormatExcel:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s, %s, or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV,
		constants.OutputFormatJSON, constants.OutputFormatExcel, format)
}

// ValidateCellAddress checks that an address is usable as a cell name:
// non-empty, lowercase alphanumeric with underscores, starting with a letter.
func ValidateCellAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("cell address must not be empty")
	}
	if addr[0] < 'a' || addr[0] > 'z' {
		return fmt.Errorf("cell address %q must start with a lowercase letter", addr)
	}
	for _, r := range addr {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return fmt.Errorf("cell address %q contains invalid character %q", addr, r)
		}
	}
	return nil
}

// ValidateTemplateName checks a template name against the known set.
func ValidateTemplateName(name string, known []string) error {
	for _, k := range known {
		if name == k {
			return nil
		}
	}
	return fmt.Errorf("unknown template %q, expected one of %s", name, strings.Join(known, ", "))
}
