package commands

import (
	"context"
	"fmt"

	"github.com/cordialsys/bridgekit/factory"
	"github.com/spf13/cobra"
)

func CmdChains() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List chains served by the bridge connector.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := factory.NewDefaultFactory()
			if err != nil {
				return err
			}
			catalog, err := f.LoadCatalog(context.Background())
			if err != nil {
				return err
			}
			for _, info := range catalog {
				fmt.Printf("%-24s %-12s %s\n", info.Chain, info.ChainID, info.DisplayName())
			}
			return nil
		},
	}
	return cmd
}
