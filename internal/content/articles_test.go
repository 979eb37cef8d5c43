package content_test

import (
	"strings"
	"testing"

	"github.com/dhanush7123/sanskrit-spark/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticles_ListOmitsStories(t *testing.T) {
	list := content.Articles()

	require.Len(t, list, 3)
	for _, a := range list {
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Excerpt.Sanskrit)
		assert.NotEmpty(t, a.Moral.Lesson)
		assert.Nil(t, a.Story, a.Slug)
	}
}

func TestFindArticle(t *testing.T) {
	a, ok := content.FindArticle("thirsty-crow")
	require.True(t, ok)
	assert.Equal(t, "The Thirsty Crow", a.Title)
	assert.Equal(t, "तृषितः काकः", a.SanskritTitle)
	require.Len(t, a.Story, 3)
	assert.True(t, strings.HasPrefix(a.Story[0].English, "In a village"))
	assert.Equal(t, "Intelligence accomplishes work.", a.Moral.English)

	byID, ok := content.FindArticle("2")
	require.True(t, ok)
	assert.Equal(t, "lion-and-mouse", byID.Slug)

	_, ok = content.FindArticle("missing")
	assert.False(t, ok)
}

func TestFindArticle_StoriesAreParallel(t *testing.T) {
	for _, listed := range content.Articles() {
		a, ok := content.FindArticle(listed.Slug)
		require.True(t, ok)
		assert.NotEmpty(t, a.Story, a.Slug)
		for i, p := range a.Story {
			assert.NotEmpty(t, p.Sanskrit, "%s paragraph %d", a.Slug, i)
			assert.NotEmpty(t, p.English, "%s paragraph %d", a.Slug, i)
		}
	}
}

func TestFindArticle_ReturnsCopy(t *testing.T) {
	a, ok := content.FindArticle("true-friendship")
	require.True(t, ok)
	a.Story[0].English = "changed"

	fresh, _ := content.FindArticle("true-friendship")
	assert.NotEqual(t, "changed", fresh.Story[0].English)
}

func TestTimeline(t *testing.T) {
	events := content.Timeline()

	require.Len(t, events, 5)
	assert.Equal(t, "Vedic Era", events[0].Era)
	assert.Equal(t, "Modern Revival", events[4].Era)
	for i, e := range events {
		assert.Equal(t, i+1, e.ID)
		assert.NotEmpty(t, e.Image)
	}

	events[0].Title = "changed"
	assert.Equal(t, "The Birth of Sanskrit", content.Timeline()[0].Title)
}
