package modsync

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/yawik/modsync/internal/version"
	"github.com/yawik/modsync/pkg/commands"
	"github.com/yawik/modsync/pkg/config"
	"github.com/yawik/modsync/pkg/logging"
	"github.com/yawik/modsync/pkg/ui"
)

// ExitError reports a non-zero exit status for a command whose outcome was
// already rendered. main exits with Code without printing anything else.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type globalFlags struct {
	verbosity  int
	quiet      bool
	root       string
	configFile string
	format     string
}

// session is what a command needs once the configuration is loaded
type session struct {
	env      *commands.Environment
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "modsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity, "")
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.PersistentFlags().StringVar(&flags.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newInstallCmd(flags))
	rootCmd.AddCommand(newUninstallCmd(flags))
	rootCmd.AddCommand(newFixPermissionsCmd(flags))
	rootCmd.AddCommand(newSyncCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// open loads the configuration and builds the environment and renderer
func (f *globalFlags) open(cmd *cobra.Command) (*session, error) {
	overrides := map[string]interface{}{}
	if f.format != "" {
		if _, err := ui.ParseFormat(f.format); err != nil {
			return nil, fmt.Errorf(MsgErrInvalidFormat, err)
		}
		overrides["output.format"] = f.format
	}

	cfg, err := config.Load(config.LoadOptions{
		Root:      f.root,
		File:      f.configFile,
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInvalidFormat, err)
	}
	out := cmd.OutOrStdout()
	format = ui.ResolveFormat(format, out)
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return nil, err
	}

	verbosity := logging.VerbosityFromCount(f.verbosity)
	if f.quiet {
		verbosity = logging.VerbosityQuiet
	}
	console := logging.NewConsole(cmd.ErrOrStderr(), verbosity).
		SetLogger(logging.FileLogger("console")).
		SetDecorated(format == ui.FormatTerminal)

	env, err := commands.NewEnvironment(commands.EnvironmentOptions{
		Config:  cfg,
		Console: console,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitialize, err)
	}

	log.Debug().
		Str("root", env.Paths.Root()).
		Str("format", format.String()).
		Msg("Session opened")
	return &session{env: env, renderer: renderer}, nil
}

// moduleNamesCompletion completes the names of published modules
func (f *globalFlags) moduleNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := f.open(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := s.env.Publisher.Published()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	taken := make(map[string]bool, len(args))
	for _, a := range args {
		taken[a] = true
	}
	var out []string
	for _, name := range names {
		if !taken[name] {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
