// Package cart implementa el estado del carrito de compras.
package cart

import (
	"slices"

	"carteasy/internal/models"
)

// MaxQuantity es el máximo de unidades por producto
const MaxQuantity = 99

// Cart mantiene las líneas del carrito en orden de inserción.
// Nunca contiene IDs duplicados ni cantidades fuera de [1, MaxQuantity].
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// New crea un carrito vacío
func New() *Cart {
	return &Cart{Items: []models.CartItem{}}
}

// Add agrega una unidad del producto
func (c *Cart) Add(product models.Product) {
	c.AddQuantity(product, 1)
}

// AddQuantity agrega n unidades; si el producto ya existe incrementa la cantidad.
// La cantidad resultante se limita a MaxQuantity.
func (c *Cart) AddQuantity(product models.Product, n int) {
	if n <= 0 {
		return
	}
	if i := c.index(product.ID); i >= 0 {
		c.Items[i].Quantity = capQuantity(c.Items[i].Quantity, n)
		return
	}
	c.Items = append(c.Items, models.CartItem{Product: product, Quantity: capQuantity(0, n)})
}

// Quantity retorna las unidades del producto en el carrito (0 si no está)
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// CanAdd indica si caben n unidades más del producto
func (c *Cart) CanAdd(productID string, n int) bool {
	return n <= MaxQuantity-c.Quantity(productID)
}

// Remove elimina la línea del producto
func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.Items = slices.Delete(c.Items, i, i+1)
	}
}

// UpdateQuantity fija la cantidad de una línea; n <= 0 elimina la línea
func (c *Cart) UpdateQuantity(productID string, n int) {
	if n <= 0 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.Items[i].Quantity = min(n, MaxQuantity)
	}
}

// Deduct descuenta las unidades de items (por ejemplo las de un pedido).
// Las líneas que quedan en cero se eliminan; las que no están se ignoran.
func (c *Cart) Deduct(items []models.CartItem) {
	for _, item := range items {
		i := c.index(item.Product.ID)
		if i < 0 {
			continue
		}
		if c.Items[i].Quantity <= item.Quantity {
			c.Items = slices.Delete(c.Items, i, i+1)
			continue
		}
		c.Items[i].Quantity -= item.Quantity
	}
}

// Clear vacía el carrito
func (c *Cart) Clear() {
	c.Items = []models.CartItem{}
}

// Contains indica si el producto está en el carrito
func (c *Cart) Contains(productID string) bool {
	return c.index(productID) >= 0
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount es la suma de cantidades
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total es la suma de precio x cantidad
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Snapshot retorna una copia de las líneas
func (c *Cart) Snapshot() []models.CartItem {
	return slices.Clone(c.Items)
}

// capQuantity suma n a current sin pasar de MaxQuantity ni desbordar
func capQuantity(current, n int) int {
	if n > MaxQuantity-current {
		return MaxQuantity
	}
	return current + n
}

func (c *Cart) index(productID string) int {
	return slices.IndexFunc(c.Items, func(item models.CartItem) bool {
		return item.Product.ID == productID
	})
}
