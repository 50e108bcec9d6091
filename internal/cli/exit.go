package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-arr-keeper/internal/app"
)

// exitCode carries a process exit code out of a cobra RunE.
type exitCode int

func (c exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

// fail prints err as one line and returns its exit code as an error.
func fail(w io.Writer, err error) error {
	fmt.Fprintln(w, app.Describe(err))
	return exitCode(app.ExitCode(err))
}

func codeErr(code int) error {
	if code == app.ExitOK {
		return nil
	}
	return exitCode(code)
}
