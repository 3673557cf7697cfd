package files

import (
	"fmt"
	"path/filepath"

	"rostercli/pkg/contracts/domain"
)

// OutputName returns the caller-convention filename for a processed roster
// restricted to the given month.
func OutputName(key domain.MonthKey) string {
	return fmt.Sprintf("Processed_Roster_%s.xlsx", key)
}

// OutputPath joins the output directory with the processed-roster filename.
func OutputPath(dir string, key domain.MonthKey) string {
	return filepath.Join(dir, OutputName(key))
}
