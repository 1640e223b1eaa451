// Package commands implements the CLI commands for plugload.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plugload/internal/adapters/config"
	"go.trai.ch/plugload/internal/app"
	"go.trai.ch/plugload/internal/build"
	"go.trai.ch/plugload/internal/core/domain"
)

// OptionsSource loads the options file for a working directory.
type OptionsSource interface {
	Load(cwd string) (domain.Options, error)
}

// CLI represents the command line interface for plugload.
type CLI struct {
	app     *app.App
	options OptionsSource
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and options source.
func New(a *app.App, options OptionsSource) *CLI {
	rootCmd := &cobra.Command{
		Use:           "plugload",
		Short:         "Discover and bind the plugins declared in a project manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to the manifest (default: search upward for package.json)")
	flags.String("cwd", "", "Directory the manifest search starts from")
	flags.StringP("options", "o", "", "Path to an options file (default: "+domain.OptionsFileName+" in the working directory)")
	flags.StringSliceP("pattern", "p", nil, "Glob patterns selecting plugins, !pattern excludes")
	flags.StringSlice("scope", nil, "Manifest sections to scan")
	flags.Bool("debug", false, "Write a debug trace to stdout")

	c := &CLI{
		app:     a,
		options: options,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and error output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// loadOptions merges the options file with the command line. Flags win.
func (c *CLI) loadOptions(cmd *cobra.Command) (domain.Options, error) {
	flags := cmd.Flags()

	cwd, err := flags.GetString("cwd")
	if err != nil {
		return domain.Options{}, err
	}
	optionsPath, err := flags.GetString("options")
	if err != nil {
		return domain.Options{}, err
	}

	var opts domain.Options
	switch {
	case optionsPath != "":
		opts, err = config.Load(optionsPath)
	case c.options != nil:
		dir := cwd
		if dir == "" {
			dir = "."
		}
		opts, err = c.options.Load(dir)
	}
	if err != nil {
		return domain.Options{}, err
	}

	if cwd != "" {
		opts.Cwd = cwd
	}
	if path, _ := flags.GetString("config"); path != "" {
		opts.ConfigPath = path
		opts.Config = nil
	}
	if patterns, _ := flags.GetStringSlice("pattern"); len(patterns) > 0 {
		opts.Pattern = patterns
	}
	if scopes, _ := flags.GetStringSlice("scope"); len(scopes) > 0 {
		opts.Scope = scopes
	}
	if debug, _ := flags.GetBool("debug"); debug {
		opts.Debug = true
	}
	return opts, nil
}
