package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"hash"
	"io"
	"net/http"
	"sync"
)

const (
	IdempotencyHeader = "Idempotency-Key"
)

var (
	_            http.ResponseWriter = cachedResWriter{}
	hasherLock                       = sync.Mutex{}
	defaultCache                     = NewCachedResMap()
	defaultHash                      = sha256.New()
)

// CacheResponses returns a middleware.Adapter that enables features
// of idempotency on a POST endpoint.
// GET, DELETE, PUT, & PATCH are idempotent by definition.
//
// CacheResponses pulls a key (a UUID v4 string) from request headers
// to base the uniqueness of a POST request around.
//
// If a previous request has not used that key,
// CacheResponses pairs all of the following values to the key:
// - the body of the request
// - the status code, headers and body of the resulting response
//
// If that key has been used before (and has not expired),
// CacheResponses falls into one of these scenarios:
//
//   - if a status code has not been set for that key,
//     CacheResponses responds with 409 since the original request is still processing
//
//   - if the newly requested resource (the URI) does not match the original,
//     CacheResponses responds with 422
//
//   - if the new request's body does not match the body of the original request's,
//     CacheResponses responds with 422
//
// - CacheResponses replays the status code, headers and body set for the key
//
// cache and hasher can be nil.
// CacheResponses will use a default cache and implementation of hash.Hash, accordingly.
//
// CacheResponses implements the draft Idempotent HTTP Header Field specification:
// https://tools.ietf.org/id/draft-idempotency-header-01.html
func CacheResponses(cache ResponseCacher, hasher hash.Hash) Adapter {
	if cache == nil {
		cache = defaultCache
	}

	if hasher == nil {
		hasher = defaultHash
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}

			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			hasherLock.Lock()
			teeBody := bytes.NewBuffer(nil)
			check := io.TeeReader(r.Body, teeBody)
			if _, err := io.Copy(hasher, check); err != nil {
				hasherLock.Unlock()
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			r.Body = io.NopCloser(teeBody)
			sum := hasher.Sum(nil)
			hasher.Reset()
			hasherLock.Unlock()

			cr, ok := cache.Get(r.Context(), key)
			if ok {
				if cr.Status == 0 {
					w.WriteHeader(http.StatusConflict)
					return
				}

				if cr.URI != r.URL.RequestURI() || !bytes.Equal(cr.Req, sum) {
					w.WriteHeader(http.StatusUnprocessableEntity)
					return
				}

				for k, v := range cr.Headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(cr.Status)
				w.Write(cr.Body.Bytes())
				return
			}

			cr = NewCachedRes(r.URL.RequestURI(), sum)
			cache.Set(r.Context(), key, cr)

			crw := cachedResWriter{
				ctx: r.Context(),
				c:   cache,
				i:   &cr,
				k:   key,
				w:   w,
			}
			handler.ServeHTTP(crw, r)
		})
	}
}

// A CachedRes is data from an HTTP response
// that can be reused when another request
// matches the same idempotency key.
type CachedRes struct {
	Body    *bytes.Buffer
	Headers map[string]string
	Req     []byte
	Status  int
	URI     string
}

// A cachedResGob is an intermediate representation of
// a CachedRes for the purposes of gob encoding/decoding.
//
// cachedResGob is necessary as long as pkg gob cannot decode/encode
// fields in a CachedRes (e.g., Body).
type cachedResGob struct {
	B []byte
	H map[string]string
	R []byte
	S int
	U string
}

// NewCachedRes constructs a new CachedRes.
func NewCachedRes(uri string, hashedBody []byte) CachedRes {
	return CachedRes{
		Body:    bytes.NewBuffer(nil),
		Headers: make(map[string]string),
		URI:     uri,
		Req:     hashedBody,
	}
}

// GobDecode unmarshals the gob-encoded []byte into fields of the *CachedRes.
//
// GobDecode implements gob.GobDecoder.
func (i *CachedRes) GobDecode(b []byte) error {
	g := new(cachedResGob)
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(g); err != nil {
		return err
	}

	i.Body = bytes.NewBuffer(g.B)
	i.Headers, i.Req, i.Status, i.URI = g.H, g.R, g.S, g.U
	return nil
}

// GobEncode marshals the fields of the CachedRes into a gob-encoded []byte.
//
// GobEncode implements gob.GobEncoder.
func (i CachedRes) GobEncode() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	g := cachedResGob{i.Body.Bytes(), i.Headers, i.Req, i.Status, i.URI}
	if err := gob.NewEncoder(buf).Encode(g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// A cachedResWriter pairs a CachedRes with an http.ResponseWriter
// so both can be written to by an HTTP handler.
// Changes to the CachedRes in such a way are saved in the cache.
//
// A cachedResWriter implements http.ResponseWriter.
type cachedResWriter struct {
	ctx context.Context
	c   ResponseCacher
	i   *CachedRes
	k   string
	w   http.ResponseWriter
}

// Header returns the http.Header of the underlying http.ResponseWriter.
func (crw cachedResWriter) Header() http.Header { return crw.w.Header() }

// Write writes the bytes to all consumers the cachedResWriter is concerned with.
func (crw cachedResWriter) Write(b []byte) (int, error) {
	select {
	case <-crw.ctx.Done():
		return 0, nil
	default:
		if crw.i.Status == 0 {
			crw.WriteHeader(http.StatusOK)
		}

		n, err := crw.w.Write(b)
		if err != nil {
			return n, err
		}

		if _, err = crw.i.Body.Write(b); err != nil {
			return n, err
		}

		crw.c.Set(crw.ctx, crw.k, *crw.i)
		return n, nil
	}
}

// WriteHeader copies the status code and headers about to be written
// to the *CachedRes for later reuse before actually writing the status code.
func (crw cachedResWriter) WriteHeader(s int) {
	select {
	case <-crw.ctx.Done():
		return
	default:
		for k := range crw.w.Header() {
			crw.i.Headers[k] = crw.w.Header().Get(k)
		}

		crw.w.WriteHeader(s)
		crw.i.Status = s
		crw.c.Set(crw.ctx, crw.k, *crw.i)
	}
}
