// 29 Apr 2020

package common

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing*.pdb")
	if err != nil {
		return "", errors.Wrap(err, "tempfile fail")
	}
	defer fTmp.Close()
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", errors.Wrapf(err, "writing string to temp file %v", fTmp.Name())
	}
	return fTmp.Name(), nil
}
