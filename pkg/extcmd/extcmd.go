// Package extcmd is a simple wrapper around os/exec.
package extcmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	log "github.com/sirupsen/logrus"
)

// Execute runs a command and returns its standard output. If the command
// exits with a non-zero status, the returned error carries the command's
// standard error output, so the tool's own diagnostic reaches the operator.
func Execute(name string, arg ...string) (string, error) {
	log.Debugf("executing: %s", shellquote.Join(append([]string{name}, arg...)...))

	cmd := exec.Command(name, arg...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return stdout.String(), nil
}
