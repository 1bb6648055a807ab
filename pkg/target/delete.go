package target

import (
	"fmt"
	"io"
	"os"

	"github.com/targettools/target-delete/pkg/targetcli"
)

// Deleter tears down a provisioned target in a fixed order: every backstore,
// then the target itself, then the backing directory, then saveconfig. The
// first failing step aborts the sequence; earlier steps are not rolled back.
type Deleter struct {
	Admin targetcli.Admin

	// RemoveDir removes the backing directory. Defaults to RemoveTree.
	RemoveDir func(dir string) error

	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer
}

// Delete runs the teardown sequence for t, registered under iqn.
func (d *Deleter) Delete(t Target, iqn string) error {
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	removeDir := d.RemoveDir
	if removeDir == nil {
		removeDir = RemoveTree
	}

	for _, bs := range t.BackingStores() {
		fmt.Fprintf(out, "Deleting backstore /backstores/fileio/%s\n", bs.Name)
		if err := d.Admin.DeleteBackstore(bs.Name); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Deleting target /iscsi/%s\n", iqn)
	if err := d.Admin.DeleteTarget(iqn); err != nil {
		return err
	}

	dir := t.Dir()
	fmt.Fprintf(out, "Removing directory %s\n", dir)
	if err := removeDir(dir); err != nil {
		return err
	}

	fmt.Fprintln(out, "Saving configuration")
	if err := d.Admin.SaveConfig(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Target deleted successfully")
	return nil
}

// RemoveTree removes dir and everything below it. Unlike os.RemoveAll it
// fails when dir does not exist, so a wrong target name or root directory
// surfaces instead of silently succeeding.
func RemoveTree(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	return os.RemoveAll(dir)
}
