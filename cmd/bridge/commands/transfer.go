package commands

import (
	"context"
	"fmt"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/errors"
	"github.com/cordialsys/bridgekit/factory"
	"github.com/cordialsys/bridgekit/wallet"
	"github.com/spf13/cobra"
)

func CmdTransfer() *cobra.Command {
	var fromAddress string
	var toAddress string
	cmd := &cobra.Command{
		Use:   "transfer <from-chain> <to-chain> <amount>",
		Short: "Bridge USDC from one chain to another and wait for the outcome.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := bridgekit.Chain(args[0])
			to := bridgekit.Chain(args[1])
			amount, err := bridgekit.NewAmountHumanReadableFromStr(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %v", args[2], err)
			}

			f, err := factory.NewDefaultFactory()
			if err != nil {
				return err
			}
			ctx := context.Background()

			req := bridgekit.NewTransferRequest(from, to, amount,
				wallet.NewStaticAdapter(fromAddress, from.KindOf()),
				wallet.NewStaticAdapter(toAddress, to.KindOf()),
			)

			orch, err := f.NewOrchestrator(ctx, wallet.AutoApproveSwitcher{}, func(info bridgekit.ChainInfo) (string, bool) {
				switch info.Chain {
				case from:
					return fromAddress, fromAddress != ""
				case to:
					return toAddress, toAddress != ""
				}
				return "", false
			})
			if err != nil {
				return err
			}

			outcome, err := orch.Submit(ctx, req)
			if err != nil {
				if errors.IsUserDeclined(err) {
					fmt.Println("network switch declined, transfer aborted")
					return nil
				}
				return err
			}

			for _, entry := range orch.Tracker().Entries() {
				fmt.Println(entry.String())
			}
			if settled, ok := outcome.Settled(); ok {
				fmt.Printf("bridged %s USDC from %s to %s\n", settled, from, to)
				return nil
			}
			reason, _ := outcome.Reason()
			return fmt.Errorf("transfer failed: %s", reason)
		},
	}
	cmd.Flags().StringVar(&fromAddress, "from-address", "", "Account address on the source chain")
	cmd.Flags().StringVar(&toAddress, "to-address", "", "Account address on the destination chain")
	cmd.MarkFlagRequired("from-address")
	cmd.MarkFlagRequired("to-address")
	return cmd
}
