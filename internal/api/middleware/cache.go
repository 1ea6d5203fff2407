package middleware

import (
	"bytes"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cachedResponse сохраненный ответ со статусом и телом
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// captureWriter буферизует ответ для кэширования
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache кэш GET ответов с коротким TTL
//
// Используется на статусной доске: её дергает каждый открытый экран
// раз в несколько секунд, а данные меняются не чаще раза в минуту
type ResponseCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewResponseCache создает кэш ответов с указанным TTL
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Wrap оборачивает handler кэшированием по полному URL запроса
// Кэшируются только успешные GET ответы
func (c *ResponseCache) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.String()
		if cached, found := c.cache.Get(key); found {
			resp := cached.(*cachedResponse)
			w.Header().Set("Content-Type", resp.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(resp.status)
			_, _ = w.Write(resp.body)
			return
		}

		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(cw, r)

		if cw.status == http.StatusOK {
			c.cache.Set(key, &cachedResponse{
				status:      cw.status,
				contentType: cw.Header().Get("Content-Type"),
				body:        cw.buf.Bytes(),
			}, c.ttl)
		}
	})
}
