// target-delete removes an iSCSI target and its backing storage files
// from a host administered with targetcli.
package main

import "github.com/targettools/target-delete/cmd"

func main() {
	cmd.Execute()
}
