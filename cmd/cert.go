package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"skillcheck/internal/store"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage earned certificates",
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := requireUser(cmd, st)
		if err != nil {
			return err
		}

		certs, err := st.Certificates().ByUser(cmd.Context(), user.ID)
		if err != nil {
			return fmt.Errorf("read certificates: %w", err)
		}
		if len(certs) == 0 {
			fmt.Println("No certificates yet. Score 80% or better on a topic to earn one.")
			return nil
		}

		now := time.Now()
		fmt.Printf("%-30s  %-20s  %-7s  %-10s  %s\n", "ID", "Topic", "Score", "Expires", "Status")
		fmt.Println(strings.Repeat("─", 84))
		for _, c := range certs {
			fmt.Printf("%-30s  %-20s  %-7.1f  %-10s  %s\n",
				c.CertificateID,
				c.Topic,
				c.Score,
				c.ExpiryDate.Local().Format("2006-01-02"),
				c.EffectiveStatus(now),
			)
		}
		return nil
	},
}

var certRevokeCmd = &cobra.Command{
	Use:   "revoke <certificate-id>",
	Short: "Revoke a certificate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Certificates().Revoke(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("certificate %q not found", args[0])
			}
			return fmt.Errorf("revoke certificate: %w", err)
		}
		fmt.Printf("Revoked %s\n", args[0])
		return nil
	},
}

func init() {
	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certRevokeCmd)
}
