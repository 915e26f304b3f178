package fwatch

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
)

// Watchable 是所有监控目标需要满足的接口
//
// Path：目标的标识（通常是文件路径），在目标生命周期内保持不变，仅用于调用方查询
// State：返回目标当前状态；不得无限阻塞，任何采样失败都应返回 ErrorState() 而不是panic
type Watchable interface {
	Path() string
	State() State
}

// BasicTarget 以文件修改时间作为指纹的默认监控目标
type BasicTarget struct {
	path string
}

// NewBasicTarget 创建监控指定路径的 BasicTarget
func NewBasicTarget(path string) *BasicTarget {
	return &BasicTarget{path: path}
}

// Path 返回监控的路径
func (t *BasicTarget) Path() string { return t.path }

// State 读取文件元信息
//
// 路径不存在（包括上级路径不是目录）时返回 DoesNotExist；元信息读取失败返回 Error；
// 否则返回带修改时间的 Exists
func (t *BasicTarget) State() State {
	fi, err := os.Stat(t.path)
	if err != nil {
		return failedState(err)
	}
	return ExistsAt(fi.ModTime())
}

// HashTarget 以文件内容的SHA-256哈希作为指纹
//
// 能发现修改时间精度无法区分的写入，但每次采样都要读取整个文件。
// 目录没有内容哈希，仍以修改时间作为指纹。
type HashTarget struct {
	path string
}

// NewHashTarget 创建监控指定路径的 HashTarget
func NewHashTarget(path string) *HashTarget {
	return &HashTarget{path: path}
}

// Path 返回监控的路径
func (t *HashTarget) Path() string { return t.path }

// State 打开文件一次，通过同一个句柄读取元信息并计算内容哈希
func (t *HashTarget) State() State {
	f, err := os.Open(t.path)
	if err != nil {
		return failedState(err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return ErrorState()
	}
	if fi.IsDir() {
		return ExistsAt(fi.ModTime())
	}
	sum, err := digest(f)
	if err != nil {
		return ErrorState()
	}
	return ExistsWith(sum)
}

// failedState 把采样错误归类为 DoesNotExist 或 Error
//
// ENOTDIR 表示上级路径已被普通文件替换，目标同样不存在
func failedState(err error) State {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return DoesNotExistState()
	}
	return ErrorState()
}

// digest 返回读取内容的SHA-256十六进制摘要
func digest(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
