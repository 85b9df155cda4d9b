package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gl-driver-switch/internal/version"
	"github.com/arthur-debert/gl-driver-switch/pkg/errors"
	"github.com/arthur-debert/gl-driver-switch/pkg/filesystem"
	"github.com/arthur-debert/gl-driver-switch/pkg/glx"
	"github.com/arthur-debert/gl-driver-switch/pkg/logging"
	"github.com/arthur-debert/gl-driver-switch/pkg/paths"
	"github.com/arthur-debert/gl-driver-switch/pkg/switcher"
)

const setLinkCmdName = "set-link"

// Replaced in tests
var (
	geteuid    = os.Geteuid
	systemRoot = "/"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "gl-driver-switch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// "help" is not a command of this tool
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate(MsgVersionFormat +
		fmt.Sprintf(MsgCommitFormat, version.Commit) +
		fmt.Sprintf(MsgBuiltFormat, version.Date))
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd)
	})

	rootCmd.AddCommand(newSetLinkCmd())

	return rootCmd
}

func newSetLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       setLinkCmdName + " <driver-name>",
		Short:     MsgSetLinkShort,
		Long:      MsgSetLinkLong,
		Example:   MsgSetLinkExample,
		ValidArgs: glx.SupportedDrivers,
		Args: func(cmd *cobra.Command, args []string) error {
			// Arguments after the driver name are ignored
			if len(args) < 1 {
				return usageError(cmd)
			}
			return nil
		},
		RunE: runSetLink,
	}

	// Everything after the driver name is left unparsed
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runRoot handles every invocation whose first argument is not set-link
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return usageError(cmd)
	}
	if err := checkRoot(); err != nil {
		return err
	}
	return errors.Newf(errors.ErrUnknownCommand, MsgUnknownCommand, args[0]).
		WithDetail("command", args[0])
}

func runSetLink(cmd *cobra.Command, args []string) error {
	if err := checkRoot(); err != nil {
		return err
	}

	driver := args[0]
	if !glx.IsSupported(driver) {
		return errors.Newf(errors.ErrUnsupportedDriver, MsgUnsupportedDriver, driver).
			WithDetail("driver", driver)
	}

	p, err := paths.New(systemRoot)
	if err != nil {
		return err
	}

	// Only a run that is going to switch links leaves an audit record.
	// Failing to open the log is already reported at debug level.
	closeLog, _ := logging.OpenAuditLog()
	defer closeLog()

	return switcher.New(filesystem.NewOS(), p).UpdateLinks(driver)
}

func checkRoot() error {
	if euid := geteuid(); euid != 0 {
		return errors.New(errors.ErrPermission, MsgNotRoot).WithDetail("euid", euid)
	}
	return nil
}

func usageError(cmd *cobra.Command) error {
	return errors.Newf(errors.ErrUsage, MsgUsage, cmd.Root().Name())
}

// Execute runs the command line in args and returns the process exit code.
// Any failure is reported as a single line on stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, FormatError(stderr, err.Error()))
		return 1
	}
	return 0
}
