package cmd

import (
	"errors"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "EDITIONS"

	flagConfig = "config"
)

// NewRootCmd builds the editionsctl command tree. Every flag can also be
// set through an EDITIONS_* environment variable or the optional YAML
// config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "editionsctl",
		Short:         "Operator tooling for edition mint controls",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "path to a YAML config file")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.AddCommand(
		leafCmd(),
		verifyCmd(v),
		splitCmd(v),
		docsCmd(v),
	)
	return rootCmd
}

// normalizeFlagName lets --fee_value stand in for --fee-value, matching the
// keys used in config files.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	path := v.GetString(flagConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v.ReadInConfig()
}

// walletBytes accepts a bech32 address of any human readable prefix.
func walletBytes(s string) ([]byte, error) {
	_, bz, err := bech32.DecodeAndConvert(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if len(bz) == 0 {
		return nil, errors.New("empty address")
	}
	return bz, nil
}

type entryArgs struct {
	wallet    []byte
	price     uint64
	maxClaims uint64
}

func parseEntry(args []string) (entryArgs, error) {
	wallet, err := walletBytes(args[0])
	if err != nil {
		return entryArgs{}, err
	}
	price, err := cast.ToUint64E(args[1])
	if err != nil {
		return entryArgs{}, err
	}
	maxClaims, err := cast.ToUint64E(args[2])
	if err != nil {
		return entryArgs{}, err
	}
	return entryArgs{wallet: wallet, price: price, maxClaims: maxClaims}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(bz))
	return nil
}
