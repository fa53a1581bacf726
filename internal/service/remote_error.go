package service

import (
	"errors"
	"fmt"
)

// バックエンド呼び出しの失敗。Message はサービスが返した人間向けメッセージ
// （取れなければ空で、呼び出し側が汎用メッセージに置き換える）。
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("store api %d: %s", e.StatusCode, e.Message)
}

func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	ok := errors.As(err, &re)
	return re, ok
}
