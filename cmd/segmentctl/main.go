// Package main is the segmentctl command line tool for inspecting and
// producing encrypted segment cookie values.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/secretcookie/pkg/config"
	"github.com/dmitrymomot/secretcookie/pkg/encryption"
	"github.com/dmitrymomot/secretcookie/pkg/segment"
)

var version = "dev"

var (
	configPath string
	key        string
	cipher     string
	algo       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "segmentctl",
		Short:         "Encrypt and decrypt segment cookie values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (defaults to SEGMENT_* env)")
	rootCmd.PersistentFlags().StringVar(&key, "key", "", "Encryption key, overrides config")
	rootCmd.PersistentFlags().StringVar(&cipher, "cipher", "", "Cipher, overrides config")
	rootCmd.PersistentFlags().StringVar(&algo, "algo", "", "Hash algorithm, overrides config")

	rootCmd.AddCommand(encryptCmd())
	rootCmd.AddCommand(decryptCmd())
	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadEncrypter builds the Encrypter from env, the optional config file and flags.
func loadEncrypter() (encryption.Encrypter, error) {
	var cfg segment.Config
	if configPath != "" {
		if err := config.LoadFile(configPath, &cfg); err != nil {
			return nil, err
		}
	} else if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	cfg = segment.DefaultConfig().Merge(cfg).Merge(segment.Config{
		Key:    key,
		Cipher: cipher,
		Algo:   algo,
	})

	return encryption.New(cfg.EncryptionConfig())
}

// input returns the first argument, or stdin when there is none or it is "-".
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// parseValues decodes a JSON object. Whole numbers become int so that
// segment.Value[int] reads them back; other numbers become float64.
func parseValues(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("parsing input: %w", err)
	}
	for k, v := range values {
		values[k] = numbers(v)
	}
	return values, nil
}

func numbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(v.String(), 10, 0); err == nil {
			return int(n)
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		for k, e := range v {
			v[k] = numbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = numbers(e)
		}
		return v
	default:
		return v
	}
}

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [json]",
		Short: "Encrypt a JSON object into a cookie value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := loadEncrypter()
			if err != nil {
				return err
			}

			raw, err := input(cmd, args)
			if err != nil {
				return err
			}

			values, err := parseValues(raw)
			if err != nil {
				return err
			}

			value, err := enc.Encrypt(values)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [value]",
		Short: "Decrypt a cookie value and print it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := loadEncrypter()
			if err != nil {
				return err
			}

			raw, err := input(cmd, args)
			if err != nil {
				return err
			}
			if raw == "" {
				return errors.New("empty cookie value")
			}

			values, err := enc.Decrypt(raw)
			if err != nil {
				return err
			}

			out := json.NewEncoder(cmd.OutOrStdout())
			out.SetIndent("", "  ")
			return out.Encode(values)
		},
	}
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key for SEGMENT_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := encryption.GenerateKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), k)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "segmentctl version %s\n", version)
		},
	}
}
