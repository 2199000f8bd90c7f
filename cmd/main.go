// @title        Blog API
// @version      1.0
// @description  Users sign up or sign in for a bearer token and publish, edit and read posts.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "blog",
		Short:         "Blog backend: accounts, tokens and posts over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		// bare invocation serves, like the old single-purpose binary
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default configs/config.yml)")

	root.AddCommand(
		newServeCommand(&configFile),
		newMigrateCommand(&configFile),
	)
	return root
}
