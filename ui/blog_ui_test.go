package ui

import (
	"testing"

	"github.com/automoto/coffeeon/blog"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"brew the", "perfect", "cup"}, wrap("brew the perfect cup", 8))
	assert.Equal(t, []string{"one", "two"}, wrap("one\n\ntwo", 80))
	assert.Nil(t, wrap("   ", 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "قهوة…", truncate("قهوة عربية", 4))
}

func TestPostDate(t *testing.T) {
	assert.Equal(t, "Mar 4, 2024", postDate(blog.Post{Date: "2024-03-04T09:30:00"}))
	assert.Empty(t, postDate(blog.Post{}))
}
