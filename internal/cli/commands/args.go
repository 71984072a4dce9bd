package commands

import "github.com/spf13/cobra"

// RootArgs prepares os.Args[1:] for rootCmd.Execute.
// Unless the first argument names a subcommand or asks for help or the version,
// "--" is put in front so every argument reaches the root command as a file path,
// including names that start with "-". A file named like a subcommand
// has to follow an explicit "--" (tcgen -- list).
func RootArgs(rootCmd *cobra.Command, args []string) []string {
	if len(args) == 0 || args[0] == "--" {
		return args
	}

	switch args[0] {
	case "-h", "--help", "--version", "help", "completion",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return args
	}
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == args[0] || sub.HasAlias(args[0]) {
			return args
		}
	}

	return append([]string{"--"}, args...)
}
