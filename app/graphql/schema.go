// Package graphql exposes a read-only query surface over the catalog and
// order history, for dashboards that want to shape their own payloads.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/tokoku/app/services"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.Int},
		"name":  &graphql.Field{Type: graphql.String},
		"price": &graphql.Field{Type: graphql.Int},
		"image": &graphql.Field{Type: graphql.String},
		"stock": &graphql.Field{Type: graphql.Int},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.Int},
		"product_id": &graphql.Field{Type: graphql.Int},
		"name":       &graphql.Field{Type: graphql.String},
		"price":      &graphql.Field{Type: graphql.Int},
		"qty":        &graphql.Field{Type: graphql.Int},
		"sub_total":  &graphql.Field{Type: graphql.Int},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.Int},
		"cust_name": &graphql.Field{Type: graphql.String},
		"cust_wa":   &graphql.Field{Type: graphql.String},
		"address":   &graphql.Field{Type: graphql.String},
		"payment":   &graphql.Field{Type: graphql.String},
		"total":     &graphql.Field{Type: graphql.Int},
		"items":     &graphql.Field{Type: graphql.NewList(orderItemType)},
	},
})

// NewSchema wires the read-only root query over the shop services.
// Mutations stay on the REST surface.
func NewSchema(catalog *services.CatalogService, report *services.ReportService) (graphql.Schema, error) {
	root := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.List()
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					product, err := catalog.Find(uint(id))
					if err != nil {
						return nil, err
					}
					return product, nil
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return report.ListOrders()
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					order, err := report.OrderDetail(uint(id))
					if err != nil {
						return nil, err
					}
					return order, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: root})
}
