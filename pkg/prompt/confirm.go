package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Confirm displays a prompt `s` to the user and returns true if the user
// confirmed, false if not. The answer is read from r, which is os.Stdin for
// interactive use.
// If the lower cased, trimmed input is equal to 'y', that is considered to be
// a confirmation. Any other input value will return false.
func Confirm(r io.Reader, s string) bool {
	fmt.Printf("%s [y/N]: ", s)

	res, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		logrus.Error(err)
		return false
	}

	return strings.ToLower(strings.TrimSpace(res)) == "y"
}
