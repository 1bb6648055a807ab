package targetcli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		descr    string
		invoke   func(c *CLI) error
		expected []string
	}{{
		descr: "delete backstore",
		invoke: func(c *CLI) error {
			return c.DeleteBackstore("db01-00")
		},
		expected: []string{"targetcli", "/backstores/fileio", "delete", "db01-00"},
	}, {
		descr: "delete target",
		invoke: func(c *CLI) error {
			return c.DeleteTarget("iqn.2003-01.org.server1.db01")
		},
		expected: []string{"targetcli", "/iscsi", "delete", "iqn.2003-01.org.server1.db01"},
	}, {
		descr: "save configuration",
		invoke: func(c *CLI) error {
			return c.SaveConfig()
		},
		expected: []string{"targetcli", "saveconfig"},
	}}

	for i := range cases {
		tcase := &cases[i]
		t.Run(tcase.descr, func(t *testing.T) {
			t.Parallel()

			var got []string
			cli := &CLI{run: func(name string, arg ...string) (string, error) {
				got = append([]string{name}, arg...)
				return "", nil
			}}

			require.NoError(t, tcase.invoke(cli))
			assert.Equal(t, tcase.expected, got)
		})
	}
}

func TestRunErrorIsPropagated(t *testing.T) {
	t.Parallel()

	errRun := errors.New("targetcli: exit status 1")
	cli := &CLI{run: func(name string, arg ...string) (string, error) {
		return "", errRun
	}}

	assert.ErrorIs(t, cli.DeleteBackstore("db01-00"), errRun)
	assert.ErrorIs(t, cli.DeleteTarget("iqn.2003-01.org.server1.db01"), errRun)
	assert.ErrorIs(t, cli.SaveConfig(), errRun)
}
