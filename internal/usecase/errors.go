package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"app/internal/service"
)

type ErrorKind string

const (
	// ローカルの事前条件違反。ネットワークには出ない。
	KindValidation ErrorKind = "validation"
	// バックエンド呼び出しの失敗（ネットワーク・コード無効・サーバー側検証）。
	KindRemote ErrorKind = "remote"
	// 同一カテゴリの操作が実行中（多重チェックアウトなど）。
	KindConflict ErrorKind = "conflict"
)

type HTTPError struct {
	Status  int
	Kind    ErrorKind
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func NewValidationError(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

func NewConflictError(message string) error {
	return &HTTPError{Status: http.StatusConflict, Kind: KindConflict, Message: message}
}

// バックエンドのエラーをHTTPErrorへ。サービスがメッセージを返していればそれを使い、
// 4xxはそのまま通す（コード無効など）。それ以外は502扱い。
func NewRemoteError(err error) error {
	status := http.StatusBadGateway
	message := "store service error"
	if re, ok := service.AsRemoteError(err); ok {
		if re.Message != "" {
			message = re.Message
		}
		if re.StatusCode >= 400 && re.StatusCode < 500 {
			status = re.StatusCode
		}
	}
	return &HTTPError{Status: status, Kind: KindRemote, Message: message}
}

// CartStateのErrに入れる文言。
func remoteMessage(err error) string {
	if re, ok := service.AsRemoteError(err); ok && re.Message != "" {
		return re.Message
	}
	return "store service error"
}
