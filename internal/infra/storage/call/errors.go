package call

import "errors"

var (
	// ErrCallNotFound возвращается, когда звонок не найден в журнале
	ErrCallNotFound = errors.New("call.repository: call not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("call.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("call.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("call.repository: failed to scan row")
)
