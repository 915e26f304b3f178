// Package fwatch 提供基于轮询的文件状态变化检测。
//
// 核心特点：
//   - 调用方注册若干监控目标(Watchable)，每个目标能报告自身当前状态(State)
//   - 每次调用 Watch() 会重新采样所有目标，与上一次记录的状态比较
//   - 按注册顺序返回每个目标的状态迁移(Transition)：Created / Modified / Deleted / None
//   - 采样失败不会返回错误，而是表现为 Error 状态，参与正常的比较
//   - 默认目标 BasicTarget 以修改时间作为指纹，HashTarget 以文件内容SHA-256作为指纹
//
// 注意：
//   - 不使用 inotify/FSEvents 等系统通知，也不做 Debounce
//   - 不递归监控目录，目录本身只作为一个目标
//   - 轮询频率完全由调用方决定（定时器、循环或外部触发）
//   - 进入或离开 Error 状态没有单独的迁移类型：Exists -> Error 报告 None，Error -> DoesNotExist 报告 Deleted
//   - 修改时间精度取决于文件系统，同一精度窗口内的两次写入可能无法区分
//
// 推荐使用方式：
//  1. 通过 NewWatcher 创建 Watcher（或用 NewWatcherFromConfig 从配置创建）
//  2. 调用 AddTarget() 注册目标，注册时立即采样初始状态
//  3. 按需调用 Watch()，根据返回的 Transition 处理变化
//  4. 通过 GetPath()/GetState() 按下标查询目标路径与最近状态
//
// 并发安全：
//   - Watcher 不是并发安全的，不要在多个goroutine中同时使用同一个实例
//   - 如需并发轮询，请为每个goroutine创建独立的 Watcher
package fwatch
