// Package targetcli drives the targetcli administration shell.
package targetcli

import (
	"github.com/targettools/target-delete/pkg/extcmd"
)

// Binary is the name of the targetcli executable, resolved via PATH.
const Binary = "targetcli"

// Admin is the subset of targetcli operations needed to tear down a target.
type Admin interface {
	// DeleteBackstore removes a fileio backstore by name.
	DeleteBackstore(name string) error
	// DeleteTarget removes an iSCSI target by IQN.
	DeleteTarget(iqn string) error
	// SaveConfig persists the running configuration.
	SaveConfig() error
}

// CLI is an Admin that shells out to the targetcli binary. Each call is
// synchronous; a non-zero exit of the tool is reported as an error.
type CLI struct {
	run func(name string, arg ...string) (string, error)
}

func New() *CLI {
	return &CLI{run: extcmd.Execute}
}

func (c *CLI) DeleteBackstore(name string) error {
	_, err := c.run(Binary, "/backstores/fileio", "delete", name)
	return err
}

func (c *CLI) DeleteTarget(iqn string) error {
	_, err := c.run(Binary, "/iscsi", "delete", iqn)
	return err
}

func (c *CLI) SaveConfig() error {
	_, err := c.run(Binary, "saveconfig")
	return err
}
