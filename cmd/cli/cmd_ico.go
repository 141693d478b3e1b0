package main

import (
	"github.com/spf13/cobra"
)

func icoCommand(pHostURL *string, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ico",
		Short: "manages the sale campaign",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "returns the current campaign",
		Run: func(cmd *cobra.Command, args []string) {
			status := map[string]interface{}{}
			for _, m := range []string{"ico", "icoSeq", "isIcoInProgress", "currentBonusPercent", "minAmount"} {
				res, err := DoRequest((*pHostURL), "boosto."+m, []interface{}{})
				if err != nil {
					p.print(nil, err)
					return
				}
				status[m] = res
			}
			p.print(status, nil)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add [admin] [campaign.yaml]",
		Short: "opens the campaign of the yaml file",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			c, err := LoadCampaignFile(args[1])
			if err != nil {
				p.print(nil, err)
				return
			}
			now, err := DoRequest((*pHostURL), "chain.timestamp", []interface{}{})
			if err != nil {
				p.print(nil, err)
				return
			}
			ts, _ := now.(float64)
			params := append([]interface{}{args[0]}, c.Params(uint64(ts))...)
			p.print(DoRequest((*pHostURL), "boosto.adminAddICO", params))
		},
	})
	return cmd
}

func whiteListCommand(pHostURL *string, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "manages the whitelist of the private campaign",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get [address]",
		Short: "returns the address is in the whitelist or not",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "boosto.whiteList", []interface{}{args[0]}))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set [admin] [address] [true|false]",
		Short: "adds or removes the address",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "boosto.adminUpdateWhiteList", []interface{}{args[0], args[1], args[2]}))
		},
	})
	return cmd
}

func chainCommand(pHostURL *string, p *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "shows chain informations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "timestamp",
		Short: "returns the time of the node",
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "chain.timestamp", []interface{}{}))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "receipt [hash]",
		Short: "returns the receipt of the call",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			p.print(DoRequest((*pHostURL), "chain.receipt", []interface{}{args[0]}))
		},
	})
	return cmd
}
