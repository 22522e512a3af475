package cmd

import "github.com/spf13/cobra"

// newVersionCmd 创建 version 子命令。
// 命令示例：solloc version
func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示当前版本号",
		// 不依赖配置文件，配置错误时也能查看版本。
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("solloc version %s\n", version)
		},
	}
}
