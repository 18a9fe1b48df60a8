package main

import (
	"os"

	"github.com/cordialsys/bridgekit/cmd/bridge/commands"
	"github.com/cordialsys/bridgekit/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdBridge() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:          "bridge",
		Short:        "Move USDC between chains through the bridge connector",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if logLevel != "" {
				config.ConfigureLogger(logLevel)
			} else {
				config.ConfigureLogger()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.AddCommand(commands.CmdChains())
	cmd.AddCommand(commands.CmdBalance())
	cmd.AddCommand(commands.CmdTransfer())
	return cmd
}

func main() {
	if err := CmdBridge().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
