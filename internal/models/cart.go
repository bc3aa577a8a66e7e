package models

// CartItem representa una línea del carrito
type CartItem struct {
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
