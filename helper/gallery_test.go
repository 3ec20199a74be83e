package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGallery(t *testing.T) {
	t.Run("partial fill leaves later slots nil", func(t *testing.T) {
		gallery := NormalizeGallery([]string{"a.jpg", "b.jpg"})
		require.NotNil(t, gallery.Image1)
		require.NotNil(t, gallery.Image2)
		assert.Equal(t, "a.jpg", *gallery.Image1)
		assert.Equal(t, "b.jpg", *gallery.Image2)
		assert.Nil(t, gallery.Image3)
		assert.Nil(t, gallery.Image4)
		assert.Nil(t, gallery.Image5)
	})

	t.Run("entries past five are dropped", func(t *testing.T) {
		gallery := NormalizeGallery([]string{"1", "2", "3", "4", "5", "6"})
		require.NotNil(t, gallery.Image5)
		assert.Equal(t, "5", *gallery.Image5)
	})

	t.Run("empty input", func(t *testing.T) {
		gallery := NormalizeGallery(nil)
		assert.Nil(t, gallery.Image1)
	})
}

func TestGalleryImages(t *testing.T) {
	images := []string{"a.jpg", "b.jpg", "c.jpg"}
	assert.Equal(t, images, GalleryImages(NormalizeGallery(images)))
	assert.Nil(t, GalleryImages(NormalizeGallery(nil)))
}
