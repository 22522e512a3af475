package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"solloc/internal/classifier"
	"solloc/internal/config"
	"solloc/internal/report"
	"solloc/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
// 只有显式传入的 flag 才会覆盖配置文件中的值。
type scanOptions struct {
	extensions []string
	format     string
	output     string
	workers    int
	absolute   bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	solloc scan .
//	solloc scan ./contracts --format json --output result.json
func newScanCmd(state *appState) *cobra.Command {
	options := scanOptions{
		extensions: []string{config.DefaultExtension},
		format:     config.DefaultFormat,
		workers:    config.DefaultWorkers,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描目录或文件并输出有效代码行统计",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *state.cfg
			options.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			target := cfg.Root
			if len(args) == 1 {
				target = args[0]
			}

			sink, err := report.NewSink(cfg.Format, cmd.OutOrStdout(), colorEnabled(&cfg))
			if err != nil {
				return err
			}

			service := scanner.NewService(classifier.New(cfg.Syntax), scanner.Options{
				Extensions:    cfg.Extensions,
				Workers:       cfg.Workers,
				AbsolutePaths: cfg.AbsolutePaths,
				Logger:        state.logger,
			})

			result, err := service.Scan(target, sink)
			if err != nil {
				return err
			}

			outputPath := strings.TrimSpace(cfg.Output)
			if outputPath == "" {
				return nil
			}
			if err := report.WriteFile(outputPath, result); err != nil {
				return err
			}

			state.logger.Info("report exported", "path", outputPath)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report exported to %s\n", outputPath)
			return nil
		},
	}

	scanCmd.Flags().StringSliceVar(&options.extensions, "ext", options.extensions, "扫描的文件后缀，可重复或用逗号分隔")
	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: "+strings.Join(report.Formats, ", "))
	scanCmd.Flags().StringVar(&options.output, "output", "", "导出文件路径（.json/.yaml/.yml），为空则不导出")
	scanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量，1 表示顺序扫描")
	scanCmd.Flags().BoolVar(&options.absolute, "absolute", false, "输出绝对路径")

	return scanCmd
}

// apply 把显式传入的 flag 写入配置副本。
func (o *scanOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("ext") {
		cfg.Extensions = o.extensions
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(o.format))
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("absolute") {
		cfg.AbsolutePaths = o.absolute
	}
}

// colorEnabled 判断是否输出颜色：配置未禁用且终端支持。
func colorEnabled(cfg *config.Config) bool {
	return !cfg.NoColor && !color.NoColor
}
