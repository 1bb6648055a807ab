// Package target models the naming scheme shared with the companion target
// creation tool and implements the teardown sequence for a provisioned
// target.
package target

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Defaults matching the creation tool.
const (
	DefaultLunCount = 10
	DefaultRootDir  = "/target"
	DefaultIQNBase  = "iqn.2003-01.org"
)

// ShortHostName returns the part of fqdn before the first dot, or fqdn
// unchanged when it contains no dot.
func ShortHostName(fqdn string) string {
	host, _, _ := strings.Cut(fqdn, ".")
	return host
}

// Target describes an iSCSI target as provisioned by the creation tool.
// All derivations are pure; the hostname is passed in by the caller.
type Target struct {
	Name     string
	IQNBase  string
	RootDir  string
	LunCount int
}

// IQN returns the qualified name registered for this target on the given
// host. It must match the name the creation tool registered, which is
// IQNBase, the short host name, and the target name joined with dots.
func (t Target) IQN(host string) string {
	return t.IQNBase + "." + host + "." + t.Name
}

// Dir returns the directory holding the target's backing files.
func (t Target) Dir() string {
	return filepath.Join(t.RootDir, t.Name)
}

// BackingStore identifies one file-backed LUN of a target.
type BackingStore struct {
	Name string // backstore name as registered with targetcli
	Path string // backing file below the target directory
}

// BackingStores lists the target's backstores in ascending LUN order.
// The file name of LUN n is its zero-padded two-digit decimal index.
func (t Target) BackingStores() []BackingStore {
	stores := make([]BackingStore, 0, t.LunCount)
	for n := 0; n < t.LunCount; n++ {
		file := fmt.Sprintf("%02d", n)
		stores = append(stores, BackingStore{
			Name: t.Name + "-" + file,
			Path: filepath.Join(t.Dir(), file),
		})
	}
	return stores
}
