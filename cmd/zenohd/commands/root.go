// Package commands implements the zenohd CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"

	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "zenohd",
	Short: "zenohd runs a unicast receive pipeline peer",
	Long: `zenohd listens for unicast links and demultiplexes incoming
transport messages into priority/reliability conduits, reassembling
fragmented application messages and dispatching complete ones to a
callback.

Session establishment, the send path, link discovery and scouting are
out of scope: zenohd accepts plain TCP connections on its configured
listener and treats each one as an already-negotiated unicast link.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Printf("zenohd %s (%s)\n", Version, Commit)
		return nil
	},
}
