package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rzbill/fastuuid/pkg/fastuuid"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [ID...]",
		Short: "Check ids have the hex128 shape (reads stdin when no ids are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rfc, _ := cmd.Flags().GetBool("rfc")

			ids := args
			if len(ids) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						ids = append(ids, line)
					}
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			invalid := 0
			out := cmd.OutOrStdout()
			for _, id := range ids {
				ok := validID(id, rfc)
				status := "valid"
				if !ok {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(out, "%s\t%s\n", id, status)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d ids invalid", invalid, len(ids))
			}
			return nil
		},
	}
	cmd.Flags().Bool("rfc", false, "Also require RFC-4122 version 4 and variant bits")
	return cmd
}

// validID checks the hex128 shape and, with rfc, the version and variant bits.
func validID(id string, rfc bool) bool {
	if !fastuuid.IsValidHex128(id) {
		return false
	}
	if !rfc {
		return true
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
