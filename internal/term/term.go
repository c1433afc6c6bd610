// Package term decides whether text output may use ANSI colour.
package term

import (
	"fmt"
	"os"
)

// ColorEnabled resolves a colour mode for the file descriptor fd. "auto"
// enables colour only on a terminal and only if NO_COLOR is unset.
func ColorEnabled(mode string, fd uintptr) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false, nil
		}
		return IsTerminal(fd), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}
