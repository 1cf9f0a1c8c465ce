// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// readyTimeout はストア疎通確認の上限時間です。
const readyTimeout = 2 * time.Second

// probeResponse はプローブ系エンドポイント共通の応答を書き込みます。
// 結果をキャッシュさせず、HEAD にはボディを返しません。
func probeResponse(c *gin.Context, status int, state string) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"status": state})
}

// Health は /healthz の liveness 応答です。プロセスが動いていれば常に成功します。
func Health(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Header("Cache-Control", "no-store")
		c.Status(http.StatusNoContent)
		return
	}
	probeResponse(c, http.StatusOK, "ok")
}

// Pinger は疎通確認ができる依存先（価格ストア）です。
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ready は /readyz を処理し、価格ストアに到達できない場合は503を返します。
func Ready(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			probeResponse(c, http.StatusServiceUnavailable, "unavailable")
			return
		}
		probeResponse(c, http.StatusOK, "ready")
	}
}
