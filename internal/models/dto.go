package models

import "time"

// Request and response shapes of the API surface. The field names mirror the
// Mini App client contract, which is why they stay snake_case.

type GoodCardRequest struct {
	Name             string `json:"name" binding:"required"`
	Category         string `json:"category" binding:"required"`
	Price            int    `json:"price" binding:"required"`
	NonDiscountPrice *int   `json:"non_discount_price"`
	Description      string `json:"description"`
}

type ImageDTO struct {
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

type GoodDTO struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Price            int        `json:"price"`
	NonDiscountPrice *int       `json:"non_discount_price,omitempty"`
	Description      string     `json:"description"`
	Images           []ImageDTO `json:"images"`
	Status           string     `json:"status"`
}

type ImageReorderRequest struct {
	ImageURLs []string `json:"imageUrls" binding:"required"`
}

type CategoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type CategoryDTO struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type ShopAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

type CartItemRequest struct {
	GoodID uint `json:"good_id" binding:"required"`
	Count  int  `json:"count" binding:"required,min=1"`
}

type OrderRequest struct {
	Status          string            `json:"status" binding:"required"`
	UserID          int64             `json:"user_id" binding:"required"`
	DeliveryType    string            `json:"delivery_type" binding:"required,oneof=PICK_UP COURIER"`
	DeliveryAddress string            `json:"delivery_address"`
	CartItems       []CartItemRequest `json:"cart_items" binding:"required,min=1,dive"`
}

type CartItemDTO struct {
	GoodID   uint   `json:"good_id"`
	GoodName string `json:"good_name"`
	Count    int    `json:"count"`
	Price    int    `json:"price"`
}

type OrderDTO struct {
	ID              uint          `json:"id"`
	Status          string        `json:"status"`
	UserID          int64         `json:"user_id"`
	UserPhone       *string       `json:"user_phone,omitempty"`
	Createstamp     time.Time     `json:"createstamp"`
	Changestamp     time.Time     `json:"changestamp"`
	Createuser      *int64        `json:"createuser,omitempty"`
	Changeuser      *int64        `json:"changeuser,omitempty"`
	DeliveryType    string        `json:"delivery_type"`
	DeliveryAddress string        `json:"delivery_address"`
	CartItems       []CartItemDTO `json:"cart_items"`
}

type UserInfoDTO struct {
	ID       int64   `json:"id"`
	Role     string  `json:"role"`
	Mode     string  `json:"mode"`
	Status   string  `json:"status"`
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type UserModeUpdateRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type PhoneUpdateRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type SettingRequest struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type PromoBannerRequest struct {
	ImageURL     string `json:"image_url" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

type AddressSuggestionDTO struct {
	Value  string  `json:"value"`
	GeoLat *string `json:"geo_lat"`
	GeoLon *string `json:"geo_lon"`
}
