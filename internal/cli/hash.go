package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/diegoclair/chore-board/internal/domain/service"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the SITE_PASSWORD_HASH value for a password",
	Long:  "Print the hex sha256 of a password. Without an argument the password is read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	fmt.Fprintln(cmd.OutOrStdout(), service.HashPassword(password))
	return nil
}
