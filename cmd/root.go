// Package cmd 提供 solloc 的命令行入口与子命令编排。
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"solloc/internal/config"
	"solloc/internal/logging"
)

// appState 保存所有子命令共享的配置和 logger。
// 在 PersistentPreRunE 中加载，子命令只读取。
type appState struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	state := &appState{}

	rootCmd := &cobra.Command{
		Use:   "solloc",
		Short: "统计 Solidity 源码有效代码行",
		Long: "solloc 遍历目录，按后缀（默认 .sol）筛选文件，\n" +
			"剥离空行、行注释和块注释后输出每个文件及总计的有效代码行数。",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "配置文件路径，默认查找 ./.solloc.yaml 与 ~/.solloc.yaml")
	flags.StringVar(&state.logLevel, "log-level", config.DefaultLogLevel, "日志级别: debug, info, warn, error")
	flags.StringVar(&state.logFormat, "log-format", config.DefaultLogFormat, "日志格式: text 或 json")
	flags.BoolVar(&state.noColor, "no-color", false, "禁用彩色输出")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newSyntaxCmd(state))
	rootCmd.AddCommand(newCountCmd(state))
	rootCmd.AddCommand(newScanCmd(state))

	return rootCmd
}

// load 读取配置，用显式传入的全局 flag 覆盖配置值，并创建 logger。
func (s *appState) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = s.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = s.logFormat
	}
	if flags.Changed("no-color") {
		cfg.NoColor = s.noColor
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	return nil
}
