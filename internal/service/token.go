package service

import "context"

type tokenKey struct{}

// セッションのbearerトークンをcontextに載せる。
// ミドルウェアが入れて、バックエンド呼び出し時にAuthorizationへ転送する。
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok && tok != ""
}
