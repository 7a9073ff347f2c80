package modsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Publish Yawik module assets and repair permissions"
	MsgInstallShort        = "Publish module assets into the public web root"
	MsgUninstallShort      = "Remove published module assets"
	MsgUninstallLong       = "Remove public/modules/<Name> for each named module. Modules that were never published are skipped."
	MsgFixPermissionsShort = "Create and chmod the application's writable paths"
	MsgSyncShort           = "Replay package changes since the previous run"
	MsgStatusShort         = "Show how each module's assets are published"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"
	MsgManShort            = "Generate man page"

	// Status messages
	MsgVersionFormat   = "modsync version %s\n  commit: %s\n  built:  %s\n"
	MsgSyncOperations  = "Replayed %d package change(s)."
	MsgSyncNoChanges   = "No package changes since the last run."
	MsgUninstallFailed = "Some module assets could not be removed."

	// Error messages
	MsgErrLoadConfig        = "failed to load configuration: %w"
	MsgErrInitialize        = "failed to initialize: %w"
	MsgErrInvalidAsset      = "invalid asset argument %q: expected Name=directory"
	MsgErrDuplicateAsset    = "module %q given more than once"
	MsgErrInvalidModuleName = "invalid asset argument %q: %w"
	MsgErrInvalidMethod     = "invalid --method: %w"
	MsgErrInvalidFormat     = "invalid --format: %w"
	MsgErrUnknownShell      = "unknown shell %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet   = "Only print the report, no progress lines"
	MsgFlagRoot    = "Project root (default is $MODSYNC_PROJECT_ROOT or the current directory)"
	MsgFlagConfig  = "Config file (default is modsync.toml in the project root)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagMethod  = "Preferred publish method: relative, absolute or copy"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/fix-permissions-long.txt
	msgFixPermissionsLongRaw string
	MsgFixPermissionsLong    = strings.TrimSpace(msgFixPermissionsLongRaw)
)
