package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editions/x/editions/allowlist"
)

const (
	flagRoot  = "root"
	flagProof = "proof"
)

func leafCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaf [wallet] [price] [max-claims]",
		Short: "Print the allow-list leaf and tree node of an entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEntry(args)
			if err != nil {
				return err
			}
			leaf := allowlist.LeafHash(e.wallet, e.price, e.maxClaims)
			return printJSON(cmd, map[string]allowlist.Hash{
				"leaf": leaf,
				"node": allowlist.LeafNode(leaf),
			})
		},
	}
}

func verifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [wallet] [price] [max-claims]",
		Short: "Check an allow-list proof against a phase merkle root",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEntry(args)
			if err != nil {
				return err
			}
			root, err := allowlist.ParseHash(v.GetString(flagRoot))
			if err != nil {
				return fmt.Errorf("--%s: %w", flagRoot, err)
			}
			siblings := v.GetStringSlice(flagProof)
			proof := make([]allowlist.Hash, 0, len(siblings))
			for i, s := range siblings {
				h, err := allowlist.ParseHash(s)
				if err != nil {
					return fmt.Errorf("--%s[%d]: %w", flagProof, i, err)
				}
				proof = append(proof, h)
			}

			node := allowlist.EntryNode(e.wallet, e.price, e.maxClaims)
			computed := allowlist.ComputeRoot(proof, node)
			if computed != root {
				return fmt.Errorf("proof does not verify: computed root %s", computed)
			}
			cmd.Println("valid")
			return nil
		},
	}
	cmd.Flags().String(flagRoot, "", "phase merkle root (hex)")
	cmd.Flags().StringSlice(flagProof, nil, "proof siblings from leaf level upwards (hex, comma separated)")
	return cmd
}
