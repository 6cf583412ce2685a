package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/0xDVC/hellocpu/internal/commands"
)

func init() {
	rootCmd.AddCommand(routesCmd)
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes of the selected variant",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tbl, err := commands.Table(cfg, io.Discard)
		if err != nil {
			return err
		}
		commands.PrintRoutes(os.Stdout, tbl)
		return nil
	},
}
