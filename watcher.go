package fwatch

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange 表示按下标查询时下标越界
var ErrIndexOutOfRange = errors.New("fwatch: index out of range")

// Watcher 维护一组监控目标及其最近一次观测到的状态
//
// targets 与 states 按下标一一对应，注册顺序即下标顺序。
// 每次 Watch() 之后，states[i] 等于 targets[i] 最近一次采样的结果。
//
// Watcher 不是并发安全的。
type Watcher[T Watchable] struct {
	targets []T
	states  []State
}

// NewWatcher 创建一个空的 Watcher
func NewWatcher[T Watchable]() *Watcher[T] {
	return &Watcher[T]{}
}

// AddTarget 注册一个监控目标
//
// 注册时立即采样一次作为初始状态，因此注册前已存在且之后未变化的目标，
// 第一次 Watch() 会得到 TransitionNone 而不是 TransitionCreated
func (w *Watcher[T]) AddTarget(target T) {
	w.add(target)
}

// add 注册目标并返回注册时采样到的初始状态
func (w *Watcher[T]) add(target T) State {
	st := target.State()
	w.states = append(w.states, st)
	w.targets = append(w.targets, target)
	return st
}

// RemoveTarget 移除指定下标的目标，其后目标的下标依次前移
func (w *Watcher[T]) RemoveTarget(index int) error {
	if err := w.checkIndex(index); err != nil {
		return err
	}
	last := len(w.targets) - 1
	copy(w.targets[index:], w.targets[index+1:])
	copy(w.states[index:], w.states[index+1:])

	// 清空末尾元素，让被移除的目标可以被回收
	var zero T
	w.targets[last] = zero
	w.states[last] = State{}
	w.targets = w.targets[:last]
	w.states = w.states[:last]
	return nil
}

// Len 返回已注册的目标数量
func (w *Watcher[T]) Len() int {
	return len(w.targets)
}

// GetPath 返回指定下标目标的路径
func (w *Watcher[T]) GetPath(index int) (string, error) {
	if err := w.checkIndex(index); err != nil {
		return "", err
	}
	return w.targets[index].Path(), nil
}

// GetState 返回指定下标目标最近一次观测到的状态
//
// 不会重新采样
func (w *Watcher[T]) GetState(index int) (State, error) {
	if err := w.checkIndex(index); err != nil {
		return State{}, err
	}
	return w.states[index], nil
}

// Watch 重新采样所有目标并返回各自的状态迁移
//
// 返回值与注册顺序一致，每个目标一项。采样失败表现为 Error 状态，
// 不影响其它目标，本方法本身不会失败。
func (w *Watcher[T]) Watch() []Transition {
	result := make([]Transition, len(w.targets))
	for i, target := range w.targets {
		cur := target.State()
		result[i] = Classify(w.states[i], cur)
		w.states[i] = cur
	}
	return result
}

func (w *Watcher[T]) checkIndex(index int) error {
	if index < 0 || index >= len(w.targets) {
		return fmt.Errorf("index %d with %d targets: %w", index, len(w.targets), ErrIndexOutOfRange)
	}
	return nil
}
