package cmd

import (
	"github.com/spf13/cobra"

	"solloc/internal/classifier"
	"solloc/internal/model"
	"solloc/internal/report"
	"solloc/internal/scanner"
)

// stdinName 是从标准输入统计时显示的路径。
const stdinName = "<stdin>"

// newCountCmd 创建 count 子命令。
// 示例：
//
//	solloc count contracts/Token.sol
//	cat Token.sol | solloc count
func newCountCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "count [file|-]",
		Short: "统计单个文件或标准输入的有效代码行",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := scanner.NewService(classifier.New(state.cfg.Syntax), scanner.Options{
				Extensions: state.cfg.Extensions,
				Logger:     state.logger,
			})

			var (
				item model.FileCount
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				item, err = service.CountReader(stdinName, cmd.InOrStdin())
			} else {
				item, err = service.CountFile(args[0])
			}
			if err != nil {
				return err
			}

			return report.NewTextSink(cmd.OutOrStdout(), colorEnabled(state.cfg)).File(item)
		},
	}
}
