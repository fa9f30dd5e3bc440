package errors

// StoreError 数据存储层操作失败（事务已回滚）
// Error() 仅返回底层错误详情，供响应 msg 直接拼接
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// Wrap 将底层错误包装为 StoreError，nil 原样返回
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
