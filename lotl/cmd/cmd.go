/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nuts-foundation/eu-trustedlists/lotl"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const formatFlag = "format"

// FlagSet contains flags relevant for the LOTL engine
func FlagSet() *pflag.FlagSet {
	defs := lotl.DefaultConfig()
	flagSet := pflag.NewFlagSet("lotl", pflag.ContinueOnError)
	flagSet.Bool("lotl.verifyonstartup", defs.VerifyOnStartup, "Verify the hashes of the LOTL trust anchors on startup, failing when one doesn't match.")
	return flagSet
}

// Cmd contains sub-commands for the LOTL engine
func Cmd(instance *lotl.LOTL) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lotl",
		Short: "European Union List of Trusted Lists (LOTL) configuration",
	}
	cmd.AddCommand(urlCommand(instance))
	cmd.AddCommand(publicationCommand(instance))
	cmd.AddCommand(certificatesCommand(instance))
	cmd.AddCommand(verifyCommand(instance))
	cmd.AddCommand(exportCommand(instance))
	return cmd
}

func urlCommand(instance *lotl.LOTL) *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Prints the URL of the List of Trusted Lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := instance.Configuration()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), configuration.TrustedListURI().String())
			return err
		},
	}
}

func publicationCommand(instance *lotl.LOTL) *cobra.Command {
	return &cobra.Command{
		Use:   "publication",
		Short: "Prints the Official Journal publication the trust anchors were taken from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := instance.Configuration()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), configuration.CurrentlySupportedPublication())
			return err
		},
	}
}

// certificateView is the printable form of a trust anchor.
type certificateView struct {
	Index     int    `json:"index" yaml:"index"`
	Subject   string `json:"subject" yaml:"subject"`
	Issuer    string `json:"issuer" yaml:"issuer"`
	NotBefore string `json:"notBefore" yaml:"notBefore"`
	NotAfter  string `json:"notAfter" yaml:"notAfter"`
	Hash      string `json:"sha256" yaml:"sha256"`
}

func certificatesCommand(instance *lotl.LOTL) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "Lists the certificates that may sign the List of Trusted Lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := instance.Configuration()
			if err != nil {
				return err
			}
			views, err := certificateViews(configuration.Certificates())
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString(formatFlag)
			return printCertificates(cmd.OutOrStdout(), format, views)
		},
	}
	cmd.Flags().String(formatFlag, "text", "Output format (text, json, yaml)")
	return cmd
}

func certificateViews(certificates []lotl.CertificateWithHash) ([]certificateView, error) {
	views := make([]certificateView, 0, len(certificates))
	for i, anchor := range certificates {
		certificate, err := anchor.Certificate()
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i+1, err)
		}
		views = append(views, certificateView{
			Index:     i + 1,
			Subject:   certificate.Subject.String(),
			Issuer:    certificate.Issuer.String(),
			NotBefore: certificate.NotBefore.UTC().Format(time.RFC3339),
			NotAfter:  certificate.NotAfter.UTC().Format(time.RFC3339),
			Hash:      anchor.Hash(),
		})
	}
	return views, nil
}

func printCertificates(writer io.Writer, format string, views []certificateView) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(views)
	case "yaml":
		encoder := yaml.NewEncoder(writer)
		if err := encoder.Encode(views); err != nil {
			return err
		}
		return encoder.Close()
	case "text":
		for _, view := range views {
			_, err := fmt.Fprintf(writer, "#%d\n  Subject:    %s\n  Issuer:     %s\n  Not before: %s\n  Not after:  %s\n  SHA-256:    %s\n",
				view.Index, view.Subject, view.Issuer, view.NotBefore, view.NotAfter, view.Hash)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("invalid format: '%s'", format)
	}
}

func verifyCommand(instance *lotl.LOTL) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verifies that the hash of every trust anchor matches its certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := instance.Configuration()
			if err != nil {
				return err
			}
			if err := configuration.Verify(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "All %d trust anchors verified\n", len(configuration.Certificates()))
			return err
		},
	}
}

func exportCommand(instance *lotl.LOTL) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the trust anchors as PEM bundle or JWK set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configuration, err := instance.Configuration()
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString(formatFlag)
			switch format {
			case "pem":
				_, err = cmd.OutOrStdout().Write(configuration.PEMBundle())
				return err
			case "jwks":
				set, err := lotl.JWKSet(configuration.Certificates())
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(set, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			default:
				return fmt.Errorf("invalid format: '%s'", format)
			}
		},
	}
	cmd.Flags().String(formatFlag, "pem", "Export format (pem, jwks)")
	return cmd
}
