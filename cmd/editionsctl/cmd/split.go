package cmd

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editions/x/editions/types"
)

const (
	flagFeeValue  = "fee-value"
	flagFlat      = "flat"
	flagRecipient = "recipient"

	configKeyPlatformFee = "platform_fee"
)

func splitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [price]",
		Short: "Preview how a mint price is split between platform fee and treasury",
		Long: `Preview how a mint price is split between platform fee and treasury.

The fee configuration is read from the platform_fee section of the config
file and overridden by flags:

  platform_fee:
    platform_fee_value: 500
    is_fee_flat: false
    recipients:
      - address: cosmos1...
        share: 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}
			cfg, err := feeConfig(v)
			if err != nil {
				return err
			}
			split, err := types.SplitPlatformFee(price, cfg)
			if err != nil {
				return err
			}
			return printJSON(cmd, split)
		},
	}
	cmd.Flags().Uint64(flagFeeValue, 0, "platform fee in basis points, or an absolute amount with --flat")
	cmd.Flags().Bool(flagFlat, false, "treat --fee-value as an absolute amount")
	cmd.Flags().StringSlice(flagRecipient, nil, "fee recipient as address:share, repeatable")
	return cmd
}

func feeConfig(v *viper.Viper) (types.FeeConfig, error) {
	var cfg types.FeeConfig
	if raw := v.Get(configKeyPlatformFee); raw != nil {
		bz, err := json.Marshal(raw)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(bz, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", configKeyPlatformFee, err)
		}
	}

	if v.IsSet(flagFeeValue) {
		cfg.PlatformFeeValue = v.GetUint64(flagFeeValue)
	}
	if v.IsSet(flagFlat) {
		cfg.IsFeeFlat = v.GetBool(flagFlat)
	}
	if entries := v.GetStringSlice(flagRecipient); len(entries) > 0 {
		recipients := make([]types.PlatformFeeRecipient, 0, len(entries))
		for _, entry := range entries {
			r, err := parseRecipient(entry)
			if err != nil {
				return cfg, err
			}
			recipients = append(recipients, r)
		}
		cfg.Recipients = recipients
	}
	return cfg, nil
}

func parseRecipient(entry string) (types.PlatformFeeRecipient, error) {
	addr, share, ok := strings.Cut(entry, ":")
	if !ok {
		return types.PlatformFeeRecipient{}, fmt.Errorf("recipient %q: expected address:share", entry)
	}
	s, err := cast.ToUint8E(share)
	if err != nil {
		return types.PlatformFeeRecipient{}, fmt.Errorf("recipient %q: %w", entry, err)
	}
	return types.PlatformFeeRecipient{Address: strings.TrimSpace(addr), Share: s}, nil
}
