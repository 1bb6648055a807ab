package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/targettools/target-delete/pkg/prompt"
	"github.com/targettools/target-delete/pkg/target"
	"github.com/targettools/target-delete/pkg/targetcli"
)

var colorHeader = color.New(color.FgRed, color.Bold).SprintFunc()

// rootCommand represents the base command, which performs the deletion itself
func rootCommand() *cobra.Command {
	if len(os.Args) < 1 {
		log.Fatal("Program started with a zero-length argument list")
	}

	var lunCount int
	var rootDir, iqnBase string

	rootCmd := &cobra.Command{
		Use:   "target-delete [options] NAME",
		Short: "Deletes an iSCSI target and its backing storage files",
		Long: `Deletes an iSCSI target previously provisioned with the companion creation
tool. Every file-backed backstore of the target is removed from targetcli,
then the target itself, then the directory holding the backing files, and
finally the targetcli configuration is saved.

The IQN and the backstore names are derived from the target name, the IQN
base, and this host's short name, so they match what the creation tool
registered. The LUN count is not verified against the actual configuration;
a mismatch surfaces as an error from targetcli.`,
		Example: "target-delete --lun-count=4 db01",
		Args:    cobra.ExactArgs(1),
		// Execute() prints the error; avoid printing it twice.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lunCount < 0 {
				return fmt.Errorf("invalid LUN count %d: must not be negative", lunCount)
			}
			// Past argument validation; errors from here on are not
			// usage errors.
			cmd.SilenceUsage = true

			hostname, err := os.Hostname()
			if err != nil {
				return err
			}

			tgt := target.Target{
				Name:     args[0],
				IQNBase:  iqnBase,
				RootDir:  rootDir,
				LunCount: lunCount,
			}
			iqn := tgt.IQN(target.ShortHostName(hostname))

			fmt.Println(colorHeader("About to delete the following target:"))
			fmt.Printf("  Name:      %s\n", tgt.Name)
			fmt.Printf("  IQN:       %s\n", iqn)
			fmt.Printf("  Directory: %s\n", tgt.Dir())
			fmt.Printf("  LUNs:      %d\n", tgt.LunCount)

			if !prompt.Confirm(os.Stdin, "Delete this target and all its data?") {
				return nil
			}

			deleter := target.Deleter{Admin: targetcli.New()}
			return deleter.Delete(tgt, iqn)
		},
	}

	rootCmd.Flags().IntVarP(&lunCount, "lun-count", "n", target.DefaultLunCount, "Number of LUNs the target was created with")
	rootCmd.Flags().StringVarP(&rootDir, "root-dir", "r", target.DefaultRootDir, "Directory under which the backing files live")
	rootCmd.Flags().StringVarP(&iqnBase, "iqn-base", "i", target.DefaultIQNBase, "IQN prefix used when the target was created")

	rootCmd.AddCommand(versionCommand())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd := rootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
