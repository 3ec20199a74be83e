package helper

import "github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"

// NormalizeGallery maps a variable-length image list into the fixed five-slot
// layout. Slots beyond the input length stay nil; entries beyond five are
// dropped.
func NormalizeGallery(images []string) models.Gallery {
	var gallery models.Gallery
	slots := []**string{
		&gallery.Image1,
		&gallery.Image2,
		&gallery.Image3,
		&gallery.Image4,
		&gallery.Image5,
	}
	for i, image := range images {
		if i >= len(slots) {
			break
		}
		img := image
		*slots[i] = &img
	}
	return gallery
}

// GalleryImages flattens a gallery back into the list of filled slots.
func GalleryImages(g models.Gallery) []string {
	var images []string
	for _, slot := range []*string{g.Image1, g.Image2, g.Image3, g.Image4, g.Image5} {
		if slot != nil {
			images = append(images, *slot)
		}
	}
	return images
}
