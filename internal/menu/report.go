package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/lineedit/internal/storage"
)

// FailureText describes a failed result for the user. The hint may be empty.
func FailureText(res ActionResult) (string, string) {
	if res.Err == nil {
		return "", ""
	}
	var fileErr *storage.FileError
	opened := errors.As(res.Err, &fileErr) && !fileErr.OpenFailed()
	switch {
	case res.ID == IDSave && !opened:
		return fmt.Sprintf("Unable to open or create file for saving: %s", res.Target), "Check file permissions or the path."
	case res.ID == IDSave:
		return fmt.Sprintf("Failed while writing %s: %v", res.Target, fileErr.Err), ""
	case res.ID == IDLoad && !opened:
		return fmt.Sprintf("Unable to open file for loading: %s", res.Target), ""
	case res.ID == IDLoad:
		return fmt.Sprintf("Failed while reading %s: %v", res.Target, fileErr.Err), ""
	default:
		return res.Err.Error(), ""
	}
}
