package fwatch

import "github.com/fsnotify/fsnotify"

// Op 将迁移映射为对应的 fsnotify 操作
//
// Created -> Create，Modified -> Write，Deleted -> Remove，None -> 0
func (t Transition) Op() fsnotify.Op {
	switch t {
	case TransitionCreated:
		return fsnotify.Create
	case TransitionModified:
		return fsnotify.Write
	case TransitionDeleted:
		return fsnotify.Remove
	default:
		return 0
	}
}

// Events 把一次 Watch() 的结果转换为 fsnotify.Event 列表
//
// transitions 必须是本 Watcher 刚返回的结果（下标与目标对应）；
// TransitionNone 以及超出目标数量的项会被跳过。
// 便于把轮询结果交给按 fsnotify 事件编写的处理逻辑。
func (w *Watcher[T]) Events(transitions []Transition) []fsnotify.Event {
	var out []fsnotify.Event
	for i, t := range transitions {
		if t == TransitionNone || i >= len(w.targets) {
			continue
		}
		out = append(out, fsnotify.Event{Name: w.targets[i].Path(), Op: t.Op()})
	}
	return out
}
