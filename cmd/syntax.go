package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newSyntaxCmd 创建 syntax 子命令。
// 命令用于展示当前生效的注释标记以及扫描后缀。
func newSyntaxCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: "展示当前注释标记及扫描后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			rows := [][2]string{
				{"LINE COMMENT", state.cfg.Syntax.LineComment},
				{"BLOCK START", state.cfg.Syntax.BlockStart},
				{"BLOCK END", state.cfg.Syntax.BlockEnd},
				{"EXTENSIONS", strings.Join(state.cfg.Extensions, ", ")},
			}

			if _, err := fmt.Fprintln(writer, "SETTING\tVALUE"); err != nil {
				return err
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", row[0], row[1]); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
