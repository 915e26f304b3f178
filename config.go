package fwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigWatcher 用于从配置创建 Watcher
//
// WatchPaths：需要监控的路径（按顺序注册）
// IgnorePatterns：需要忽略的路径通配符，如 "*.tmp" 或 ".git"
// HashContent：为 true 时使用 HashTarget（内容哈希），否则使用 BasicTarget（修改时间）
type ConfigWatcher struct {
	WatchPaths     []string `yaml:"watchPaths"`
	IgnorePatterns []string `yaml:"ignorePatterns"`
	HashContent    bool     `yaml:"hashContent"`
}

// LoadConfig 从YAML文件读取配置
func LoadConfig(path string) (ConfigWatcher, error) {
	var cfg ConfigWatcher

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, pat := range cfg.IgnorePatterns {
		if _, err := filepath.Match(pat, ""); err != nil {
			return cfg, fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
		}
	}
	return cfg, nil
}

// NewWatcherFromConfig 按 cfg.WatchPaths 的顺序注册未被忽略的路径
//
// 注册时采样结果为 Error 的路径仍会注册，只打印一条警告
func NewWatcherFromConfig(cfg ConfigWatcher) *Watcher[Watchable] {
	w := NewWatcher[Watchable]()
	for _, p := range cfg.WatchPaths {
		if cfg.isIgnored(p) {
			continue
		}
		var target Watchable
		if cfg.HashContent {
			target = NewHashTarget(p)
		} else {
			target = NewBasicTarget(p)
		}
		if st := w.add(target); st.Kind == StateError {
			fmt.Printf("Warning: cannot read %s, watching anyway\n", p)
		}
	}
	return w
}

// isIgnored 判断路径是否匹配 IgnorePatterns
//
// 不含路径分隔符的模式只匹配文件名(base)，含分隔符的模式匹配完整路径
func (cfg ConfigWatcher) isIgnored(path string) bool {
	base := filepath.Base(path)
	for _, pat := range cfg.IgnorePatterns {
		name := base
		if strings.ContainsRune(pat, '/') || strings.ContainsRune(pat, os.PathSeparator) {
			name = filepath.ToSlash(filepath.Clean(path))
			pat = filepath.ToSlash(pat)
		}
		if matched, _ := filepath.Match(pat, name); matched {
			return true
		}
	}
	return false
}
