package commands

import (
	"context"
	"fmt"

	"github.com/cordialsys/bridgekit"
	"github.com/cordialsys/bridgekit/factory"
	"github.com/spf13/cobra"
)

func CmdBalance() *cobra.Command {
	var chain string
	var decimal bool
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Check the USDC balance of an address.  Reported as big integer unless --decimal is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]
			f, err := factory.NewDefaultFactory()
			if err != nil {
				return err
			}
			balanceClient, err := f.NewBalanceClient(bridgekit.Chain(chain))
			if err != nil {
				return err
			}
			balance, err := balanceClient.FetchBalance(context.Background(), address)
			if err != nil {
				return fmt.Errorf("could not fetch balance for address %s: %v", address, err)
			}
			if decimal {
				decimals, err := balanceClient.FetchDecimals(context.Background())
				if err != nil {
					return fmt.Errorf("could not fetch token decimals: %v", err)
				}
				fmt.Println(balance.ToHuman(decimals).String())
			} else {
				fmt.Println(balance.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chain, "chain", "", "Chain to check the balance on, e.g. Ethereum_Sepolia")
	cmd.Flags().BoolVar(&decimal, "decimal", false, "Report balance as a decimal, applying the token decimals")
	cmd.MarkFlagRequired("chain")
	return cmd
}
