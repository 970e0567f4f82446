// Package dashboard provides the immutable value objects the statistics engine
// produces for the bakery dashboard.
//
// The package includes:
//   - DeliveryStats: today's and tomorrow's delivery counters
//   - ProductDeliveries: delivered quantity per product, highest first
//   - SalesMatrix: sales per month, one row per product category
//   - Data: the composite snapshot returned for a dashboard request
//
// Values are validated on construction and expose copies of their slices, so a
// built snapshot can be shared between goroutines.
package dashboard
