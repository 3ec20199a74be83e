package models

// Gallery is the fixed five-slot image layout used by restaurants and menus.
// Empty slots stay nil.
type Gallery struct {
	Image1 *string `bson:"image_1" json:"image1"`
	Image2 *string `bson:"image_2" json:"image2"`
	Image3 *string `bson:"image_3" json:"image3"`
	Image4 *string `bson:"image_4" json:"image4"`
	Image5 *string `bson:"image_5" json:"image5"`
}
