package clients

import "context"

// ProductServiceName is the logical name the resolver knows the product
// service by.
const ProductServiceName = "product-service"

// ProductDetails is the product service's response shape, as seen by its
// consumers. Only the fields the order service needs are declared.
type ProductDetails struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Active        bool    `json:"active"`
}

// ProductClient fetches product details from the remote product service.
type ProductClient struct {
	caller *Caller
}

// NewProductClient creates a new ProductClient.
func NewProductClient(caller *Caller) *ProductClient {
	return &ProductClient{caller: caller}
}

// GetProduct returns the product with the given id, or (nil, nil) when the
// product service reports it absent.
func (c *ProductClient) GetProduct(ctx context.Context, id string) (*ProductDetails, error) {
	var product ProductDetails
	found, err := c.caller.GetJSON(ctx, ProductServiceName, "/api/products/"+id, &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &product, nil
}
