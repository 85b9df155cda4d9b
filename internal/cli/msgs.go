package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Switch the active GLX/OpenGL driver"
	MsgSetLinkShort = "Link the system GL libraries to a vendor driver"

	// Error messages. These are the whole diagnostic line the user sees.
	MsgUsage             = "Usage: %s set-link [name]"
	MsgNotRoot           = "You must be root to use this utility"
	MsgUnknownCommand    = "Unknown command: %s"
	MsgUnsupportedDriver = "Unsupported driver: %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Version output
	MsgVersionFormat = "{{.Name}} version {{.Version}}\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/set-link-long.txt
	msgSetLinkLongRaw string
	MsgSetLinkLong    = strings.TrimSpace(msgSetLinkLongRaw)

	//go:embed msgs/set-link-example.txt
	msgSetLinkExampleRaw string
	MsgSetLinkExample    = strings.TrimRight(msgSetLinkExampleRaw, "\n")
)
