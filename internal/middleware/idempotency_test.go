package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	testIdempKey = "idemp:/api/leave-events::key-1"
	testLockKey  = testIdempKey + ":lock"
)

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/leave-events", Idempotency(rdb, DefaultIdempotencyTTL), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})
	return r
}

func postLeave(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/leave-events", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func storedCreated(t *testing.T) []byte {
	payload, err := json.Marshal(storedResponse{
		Status:      http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(`{"id":1}`),
	})
	assert.NoError(t, err)
	return payload
}

func TestIdempotency(t *testing.T) {
	t.Run("nil client passes through", func(t *testing.T) {
		calls := 0
		r := newIdempotentRouter(nil, &calls)

		w := postLeave(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		w := postLeave(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(testIdempKey).RedisNil()
		mock.ExpectSetNX(testLockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(testIdempKey, storedCreated(t), DefaultIdempotencyTTL).SetVal("OK")
		mock.ExpectDel(testLockKey).SetVal(1)

		w := postLeave(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated request replays", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(testIdempKey).SetVal(string(storedCreated(t)))

		w := postLeave(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(IdempotentReplayHeader))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight request conflicts", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newIdempotentRouter(rdb, &calls)

		mock.ExpectGet(testIdempKey).RedisNil()
		mock.ExpectSetNX(testLockKey, "locked", idempotencyLockTTL).SetVal(false)

		w := postLeave(r, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
