// Package product provides the bakery product catalog used to resolve order
// lines to names, categories and prices.
//
// Products are referenced by orders through their identifier only. The Catalog
// is a read-only lookup built from a snapshot of all products.
package product
