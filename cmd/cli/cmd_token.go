package main

import (
	"github.com/spf13/cobra"
)

func tokenCommand(pHostURL *string, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "reads and moves the tokens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "returns the identity and the supply of the token",
		Run: func(cmd *cobra.Command, args []string) {
			info := map[string]interface{}{}
			for _, m := range []string{"address", "name", "symbol", "decimals", "totalSupply", "admin"} {
				res, err := DoRequest((*pHostURL), "boosto."+m, []interface{}{})
				if err != nil {
					p.print(nil, err)
					return
				}
				info[m] = res
			}
			p.print(info, nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "balance [address]",
		Short: "returns the token and the native balance of the address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tokens, err := DoRequest((*pHostURL), "boosto.balanceOf", []interface{}{args[0]})
			if err != nil {
				p.print(nil, err)
				return
			}
			native, err := DoRequest((*pHostURL), "chain.nativeBalance", []interface{}{args[0]})
			if err != nil {
				p.print(nil, err)
				return
			}
			p.print(map[string]interface{}{"tokens": tokens, "native": native}, nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "transfer [from] [to] [amount]",
		Short: "sends the tokens of the address",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "boosto.transfer", []interface{}{args[0], args[1], args[2]}))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "buy [from] [value]",
		Short: "buys the tokens with the native value",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "boosto.receive", []interface{}{args[0], args[1]}))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "call [method] (params...)",
		Short: "calls the reader of the token",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params := []interface{}{}
			for _, a := range args[1:] {
				params = append(params, a)
			}
			p.print(DoRequest((*pHostURL), "boosto."+args[0], params))
		},
	})
	return cmd
}
