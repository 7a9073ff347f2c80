package modsync

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/yawik/modsync/internal/version"
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/commands"
	"github.com/yawik/modsync/pkg/types"
)

func newInstallCmd(flags *globalFlags) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:     "install [Name=dir...]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			preferred, err := parseMethod(method)
			if err != nil {
				return err
			}
			assetMap, err := parseAssetArgs(args)
			if err != nil {
				return err
			}

			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			report, err := commands.Install(commands.InstallOptions{
				Env:    s.env,
				Method: preferred,
				Assets: assetMap,
			})
			if err != nil {
				return err
			}
			if err := s.renderer.RenderInstall(report); err != nil {
				return err
			}
			if report.ExitCode != 0 {
				return &ExitError{Code: report.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", MsgFlagMethod)
	return cmd
}

func newUninstallCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "uninstall <Name...>",
		Short:             MsgUninstallShort,
		Long:              MsgUninstallLong,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: flags.moduleNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			removed, uninstallErr := commands.Uninstall(commands.UninstallOptions{Env: s.env, Names: args})
			if err := s.renderer.RenderUninstall(removed); err != nil {
				return err
			}
			if uninstallErr != nil {
				_ = s.renderer.RenderError(uninstallErr)
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

func newFixPermissionsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "fix-permissions",
		Short:   MsgFixPermissionsShort,
		Long:    MsgFixPermissionsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			result, err := commands.FixPermissions(commands.FixPermissionsOptions{Env: s.env})
			if err != nil {
				return err
			}
			return s.renderer.RenderPermissions(result)
		},
	}
}

func newSyncCmd(flags *globalFlags) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preferred, err := parseMethod(method)
			if err != nil {
				return err
			}

			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Sync(commands.SyncOptions{Env: s.env, Method: preferred})
			if err != nil {
				return err
			}

			if len(result.Operations) == 0 {
				s.env.Console.Info("sync", MsgSyncNoChanges)
			} else {
				s.env.Console.Infof("sync", MsgSyncOperations, len(result.Operations))
			}
			if result.Flush.UninstallErr != nil {
				_ = s.renderer.RenderError(result.Flush.UninstallErr)
			}
			if err := s.renderer.RenderInstall(result.Flush.Report); err != nil {
				return err
			}
			if code := result.Flush.Report.ExitCode; code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "", MsgFlagMethod)
	return cmd
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "status [Name...]",
		Short:             MsgStatusShort,
		GroupID:           "core",
		ValidArgsFunction: flags.moduleNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}

			statuses, err := commands.Status(commands.StatusOptions{Env: s.env, Names: args})
			if err != nil {
				return err
			}
			return s.renderer.RenderStatus(statuses)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf(MsgErrUnknownShell, args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "MODSYNC",
				Section: "1",
				Source:  "modsync " + version.Version,
				Manual:  "modsync manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func parseMethod(s string) (types.PublishMethod, error) {
	if s == "" {
		return "", nil
	}
	m, err := types.ParsePublishMethod(s)
	if err != nil {
		return "", fmt.Errorf(MsgErrInvalidMethod, err)
	}
	return m, nil
}

// parseAssetArgs turns Name=dir arguments into an asset map. No arguments
// yield nil, which lets Install discover the modules itself.
func parseAssetArgs(args []string) (*types.ModuleAssetMap, error) {
	if len(args) == 0 {
		return nil, nil
	}

	assetMap := types.NewModuleAssetMap()
	for _, arg := range args {
		name, dir, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || dir == "" {
			return nil, fmt.Errorf(MsgErrInvalidAsset, arg)
		}
		if err := assets.ValidateName(name); err != nil {
			return nil, fmt.Errorf(MsgErrInvalidModuleName, arg, err)
		}
		if _, exists := assetMap.Get(name); exists {
			return nil, fmt.Errorf(MsgErrDuplicateAsset, name)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		assetMap.Set(name, abs)
	}
	return assetMap, nil
}
