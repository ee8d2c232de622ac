package entity

// Product is the catalog projection returned to the chat widget.
// The catalog itself is owned by the storefront; this service only reads it.
type Product struct {
	ID                   string   `json:"id" bson:"_id"`
	Name                 string   `json:"name" bson:"name"`
	Price                float64  `json:"price" bson:"price"`
	Mrp                  *float64 `json:"mrp" bson:"mrp,omitempty"`
	Stock                int      `json:"stock" bson:"stock"`
	ImageUrls            []string `json:"image_urls" bson:"image_urls,omitempty"`
	RequiresPrescription bool     `json:"requires_prescription" bson:"requires_prescription"`
	Category             string   `json:"category" bson:"category"`
	Description          string   `json:"description" bson:"description"`
}
