package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Menu struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID  primitive.ObjectID `bson:"restaurant_id" json:"restaurantId"`
	EtalaseID     primitive.ObjectID `bson:"etalase_id" json:"etalaseId"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	Price         int                `bson:"price" json:"price"`
	Stock         int                `bson:"stock" json:"stock"`
	IsActive      bool               `bson:"is_active" json:"isActive"`
	IsBungkusAble bool               `bson:"is_bungkus_able" json:"isBungkusAble"`
	Gallery       Gallery            `bson:"gallery" json:"gallery"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SpicyLevel is the optional 1:1 side-record of a Menu. It exists only while
// the menu declares a spiciness value; its lifecycle is owned by the menu
// service and it is never written through its own endpoint.
type SpicyLevel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuID   primitive.ObjectID `bson:"menu_id" json:"menuId"`
	MaxSpicy int                `bson:"max_spicy" json:"maxSpicy"`
}
