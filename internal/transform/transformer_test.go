package transform

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsat/josephjoseph-chile/internal/feed"
	"github.com/rsat/josephjoseph-chile/internal/models"
)

func feedImages(n int) []feed.Image {
	images := make([]feed.Image, n)
	for i := range images {
		images[i] = feed.Image{
			ID:       int64(i + 1),
			Src:      fmt.Sprintf("https://cdn.example.com/img-%d.jpg", i+1),
			Position: i + 1,
		}
	}
	return images
}

func TestBuildRecord(t *testing.T) {
	tr := NewTransformer()

	p := &feed.Product{
		ID:          101,
		Title:       "Nest Chopping Board Set",
		BodyHTML:    "<p>Space-saving boards. More text.</p><ul><li>Dishwasher safe</li></ul>",
		ProductType: "Chopping Boards",
		Tags:        []string{"New In", "kitchen"},
		Images:      feedImages(3),
	}

	record := tr.BuildRecord(p, 0)
	require.NotNil(t, record)

	assert.Equal(t, "Nest Tabla de Cortar Set", record.Name)
	assert.Equal(t, "Space-saving boards.", record.Description)
	assert.Equal(t, models.CategoryPreparacion, record.Category)
	assert.Equal(t, Gradient(0), record.Gradient)
	assert.Equal(t, []string{"Apto para lavavajillas"}, record.Features)
	assert.True(t, record.IsNew)
	assert.Equal(t, "https://cdn.example.com/img-1.jpg", record.Image)
	assert.Equal(t, []string{
		"https://cdn.example.com/img-2.jpg",
		"https://cdn.example.com/img-3.jpg",
	}, record.Gallery)
	assert.False(t, record.PublishedAt.IsZero())
}

func TestBuildRecordWithoutImages(t *testing.T) {
	tr := NewTransformer()

	record := tr.BuildRecord(&feed.Product{Title: "Bare"}, 3)
	assert.Empty(t, record.Image)
	assert.Nil(t, record.Gallery)
	assert.Equal(t, Gradient(3), record.Gradient)
}

func TestIsNew(t *testing.T) {
	assert.True(t, IsNew([]string{"gift", "New In"}))
	assert.True(t, IsNew([]string{"new in 2024"}))
	assert.False(t, IsNew([]string{"new"}))
	assert.False(t, IsNew(nil))
}

func TestGalleryURLs(t *testing.T) {
	t.Run("excludes the primary image", func(t *testing.T) {
		got := GalleryURLs(feedImages(3))
		assert.Equal(t, []string{
			"https://cdn.example.com/img-2.jpg",
			"https://cdn.example.com/img-3.jpg",
		}, got)
	})

	t.Run("caps at five", func(t *testing.T) {
		got := GalleryURLs(feedImages(9))
		assert.Len(t, got, 5)
		assert.Equal(t, "https://cdn.example.com/img-2.jpg", got[0])
		assert.Equal(t, "https://cdn.example.com/img-6.jpg", got[4])
	})

	t.Run("single image yields no gallery", func(t *testing.T) {
		assert.Nil(t, GalleryURLs(feedImages(1)))
		assert.Nil(t, GalleryURLs(nil))
	})
}
