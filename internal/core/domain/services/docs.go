// Package services provides the domain services of the bakery: the order
// lifecycle and the statistics engine behind the dashboard.
//
// The package includes:
//   - OrderLifecycle: validates and applies a state transition for one order,
//     consulting a PermissionChecker
//   - RolePolicy: the default PermissionChecker, a role -> transition table
//   - DeliveryStatsAggregator, TimeSeriesAggregator, ProductDeliveryAggregator and
//     SalesAggregator: pure reductions over an order snapshot
//   - DashboardBuilder: runs all aggregators and assembles dashboard.Data
//
// Aggregators never read the system clock; "now" and the time zone are inputs.
// They do not mutate the orders they are given, so a snapshot can be shared.
package services
