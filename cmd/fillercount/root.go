package main

import (
	"github.com/spf13/cobra"
)

type countFlags struct {
	format      string
	logLevel    string
	strict      bool
	failOnError bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags countFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "fillercount [flags] NAME[:LOWER[:UPPER]]...",
		Short: "Count filler and canon episodes of anime shows",
		Long: "Count filler and canon episodes listed on animefillerlist.com.\n\n" +
			"Each NAME is a show slug (e.g. naruto-shippuden) or title, optionally\n" +
			"followed by an inclusive episode range: naruto:3:8, naruto:100, naruto::50.\n\n" +
			"A show whose name matches a subcommand (e.g. config) must follow --:\n" +
			"  fillercount -- config",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: text, table, or json (default from config)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, or error (default from config)")
	rootCmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat malformed episode lists as errors")
	rootCmd.Flags().BoolVar(&flags.failOnError, "fail-on-error", false, "Exit with status 1 when any show fails")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
