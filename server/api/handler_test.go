package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automoto/coffeeon/blog"
	"github.com/automoto/coffeeon/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePosts struct {
	posts []blog.Post
}

func (f fakePosts) Posts(context.Context) []blog.Post { return f.posts }

func (f fakePosts) PostBySlug(_ context.Context, slug string) (blog.Post, bool) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return blog.Post{}, false
}

func (f fakePosts) Similar(_ context.Context, excludeID, n int) []blog.Post {
	out := []blog.Post{}
	for _, p := range f.posts {
		if p.ID != excludeID && len(out) < n {
			out = append(out, p)
		}
	}
	return out
}

const validBody = `{"name":"Sara","email":"sara@example.com","mobile":"0551234567","message":"Hi"}`

func post(t *testing.T, mux http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/sendMail", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func bodyOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	out, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return strings.TrimSpace(string(out))
}

func TestSendMailSuccess(t *testing.T) {
	var got contact.Message
	mux := NewMux(Deps{
		Mailer: contact.MailerFunc(func(_ context.Context, m contact.Message) error {
			got = m
			return nil
		}),
		Posts: fakePosts{},
	})

	rec := post(t, mux, validBody)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, bodyOf(t, rec))
	assert.Equal(t, "Sara", got.Name)
}

func TestSendMailTransportFailure(t *testing.T) {
	mux := NewMux(Deps{
		Mailer: contact.MailerFunc(func(context.Context, contact.Message) error {
			return errors.New("smtp: connection refused")
		}),
		Posts: fakePosts{},
	})

	rec := post(t, mux, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false}`, bodyOf(t, rec))
}

func TestSendMailUnreadableBody(t *testing.T) {
	called := false
	mux := NewMux(Deps{
		Mailer: contact.MailerFunc(func(context.Context, contact.Message) error {
			called = true
			return nil
		}),
		Posts: fakePosts{},
	})

	for _, body := range []string{`{not json`, ``, `[1,2]`} {
		rec := post(t, mux, body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), body)
		assert.JSONEq(t, `{"success":false}`, bodyOf(t, rec), body)
	}
	assert.False(t, called)
}

func TestSendMailRelaysAsReceived(t *testing.T) {
	var got []contact.Message
	mux := NewMux(Deps{
		Mailer: contact.MailerFunc(func(_ context.Context, m contact.Message) error {
			got = append(got, m)
			return nil
		}),
		Posts: fakePosts{},
	})

	tests := []struct {
		body string
		want contact.Message
	}{
		{
			body: `{"name":"Sara","email":"sara@example.com","mobile":"","message":"Hi"}`,
			want: contact.Message{Name: "Sara", Email: "sara@example.com", Message: "Hi"},
		},
		{
			body: `{"name":"R2-D2 (droid)","email":"beep","mobile":"+971 55","message":"x"}`,
			want: contact.Message{Name: "R2-D2 (droid)", Email: "beep", Mobile: "+971 55", Message: "x"},
		},
	}
	for _, tt := range tests {
		rec := post(t, mux, tt.body)
		assert.Equal(t, http.StatusOK, rec.Code, tt.body)
		assert.JSONEq(t, `{"success":true}`, bodyOf(t, rec))
	}
	require.Len(t, got, 2)
	assert.Equal(t, tests[0].want, got[0])
	assert.Equal(t, tests[1].want, got[1])
}

func TestListPostsWithoutWordPress(t *testing.T) {
	mux := NewMux(Deps{Posts: blog.NewClient("", nil, nil)})
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPost(t *testing.T) {
	src := fakePosts{posts: []blog.Post{
		{ID: 1, Slug: "one"},
		{ID: 2, Slug: "two"},
		{ID: 3, Slug: "three"},
	}}
	mux := NewMux(Deps{Posts: src, SimilarSize: 1})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/two", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp postResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Post.ID)
	require.Len(t, resp.Similar, 1)
	assert.Equal(t, 1, resp.Similar[0].ID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"post not found"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMux(Deps{Posts: fakePosts{}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
