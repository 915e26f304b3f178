package fwatch

import (
	"strconv"
	"time"
)

// StateKind 表示一次采样结果的类别
type StateKind int

const (
	// StateError 采样失败（权限不足、IO错误等）
	StateError StateKind = iota
	// StateDoesNotExist 目标不存在
	StateDoesNotExist
	// StateExists 目标存在
	StateExists
)

func (k StateKind) String() string {
	switch k {
	case StateError:
		return "error"
	case StateDoesNotExist:
		return "does-not-exist"
	case StateExists:
		return "exists"
	default:
		return "StateKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// State 表示某一时刻对目标的观测结果
//
// Kind：观测类别
// Fingerprint：仅在 Kind == StateExists 时有意义，用于区分"存在且未变"和"存在但已修改"；
// 为空表示不跟踪更细的属性
//
// State 可以直接用 == 比较
type State struct {
	Kind        StateKind
	Fingerprint string
}

// ErrorState 返回采样失败的状态
func ErrorState() State { return State{Kind: StateError} }

// DoesNotExistState 返回目标不存在的状态
func DoesNotExistState() State { return State{Kind: StateDoesNotExist} }

// ExistsState 返回不带指纹的存在状态
func ExistsState() State { return State{Kind: StateExists} }

// ExistsWith 返回带指定指纹的存在状态
func ExistsWith(fingerprint string) State {
	return State{Kind: StateExists, Fingerprint: fingerprint}
}

// ExistsAt 以修改时间(纳秒)作为指纹
func ExistsAt(modTime time.Time) State {
	return ExistsWith(strconv.FormatInt(modTime.UnixNano(), 10))
}

func (s State) String() string {
	if s.Kind == StateExists && s.Fingerprint != "" {
		return s.Kind.String() + "(" + s.Fingerprint + ")"
	}
	return s.Kind.String()
}

// Transition 表示两次连续采样之间的状态迁移
type Transition int

const (
	// TransitionNone 未观察到以下任何迁移
	TransitionNone Transition = iota
	// TransitionCreated 目标从不存在(或出错)变为存在
	TransitionCreated
	// TransitionModified 目标一直存在，但指纹发生变化
	TransitionModified
	// TransitionDeleted 目标从存在变为不存在
	TransitionDeleted
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionCreated:
		return "created"
	case TransitionModified:
		return "modified"
	case TransitionDeleted:
		return "deleted"
	default:
		return "Transition(" + strconv.Itoa(int(t)) + ")"
	}
}

// Classify 根据前后两次状态计算迁移
//
// 规则：
//   - DoesNotExist/Error -> Exists：Created
//   - Exists/Error -> DoesNotExist：Deleted
//   - Exists(a) -> Exists(b)：两边都有指纹且不同时为 Modified
//   - 其余情况（Exists -> Error、DoesNotExist -> Error、状态不变）：None
func Classify(prev, cur State) Transition {
	switch {
	case prev.Kind != StateExists && cur.Kind == StateExists:
		return TransitionCreated
	case prev.Kind != StateDoesNotExist && cur.Kind == StateDoesNotExist:
		return TransitionDeleted
	case prev.Kind == StateExists && cur.Kind == StateExists:
		if prev.Fingerprint != "" && cur.Fingerprint != "" && prev.Fingerprint != cur.Fingerprint {
			return TransitionModified
		}
	}
	return TransitionNone
}
