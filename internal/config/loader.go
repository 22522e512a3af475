package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"solloc/internal/classifier"
)

// 配置文件与环境变量的命名约定。
// 例如 log.level 对应环境变量 SOLLOC_LOG_LEVEL。
const (
	fileName  = ".solloc"
	fileType  = "yaml"
	envPrefix = "SOLLOC"
)

// LoadConfig 按 默认值 -> 配置文件 -> 环境变量 的顺序加载配置。
//
// 约束说明：
// - configPath 非空时只读取该文件，文件不存在视为错误
// - configPath 为空时依次查找当前目录和 $HOME 下的 .solloc.yaml，找不到则使用默认值
// - 加载完成后统一校验，非法取值直接返回错误
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// setDefaults 注册全部默认值。
// 只有注册过的 key 才能被 AutomaticEnv 覆盖后进入 Unmarshal 结果。
func setDefaults(v *viper.Viper) {
	syntax := classifier.DefaultSyntax()

	defaults := map[string]any{
		"root":                DefaultRoot,
		"extensions":          []string{DefaultExtension},
		"format":              DefaultFormat,
		"output":              "",
		"workers":             DefaultWorkers,
		"absolute_paths":      false,
		"no_color":            false,
		"syntax.line_comment": syntax.LineComment,
		"syntax.block_start":  syntax.BlockStart,
		"syntax.block_end":    syntax.BlockEnd,
		"log.level":           DefaultLogLevel,
		"log.format":          DefaultLogFormat,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
