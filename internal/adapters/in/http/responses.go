package http

import (
	"bakery/internal/adapters/in/http/api"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/dashboard"
	"bakery/internal/core/domain/model/order"
)

func toDashboard(data *dashboard.Data) api.Dashboard {
	stats := data.DeliveryStats()

	matrix := data.SalesPerMonth()
	categories := matrix.Categories()
	rows := matrix.Rows()
	sales := make([]api.CategorySales, len(categories))
	for i, category := range categories {
		months := make([]string, len(rows[i]))
		for j, amount := range rows[i] {
			months[j] = amount.StringFixed(2)
		}
		sales[i] = api.CategorySales{Category: category, Months: months}
	}

	entries := data.ProductDeliveries().Entries()
	products := make([]api.ProductDelivery, len(entries))
	for i, e := range entries {
		products[i] = api.ProductDelivery{
			ProductId: e.ProductID.Bytes(),
			Name:      e.Name,
			Quantity:  e.Quantity,
		}
	}

	return api.Dashboard{
		DeliveryStats: api.DeliveryStats{
			DeliveredToday:    stats.DeliveredToday(),
			DueToday:          stats.DueToday(),
			DueTomorrow:       stats.DueTomorrow(),
			NotAvailableToday: stats.NotAvailableToday(),
			NewOrders:         stats.NewOrders(),
		},
		DeliveriesThisMonth: data.DeliveriesThisMonth(),
		DeliveriesThisYear:  data.DeliveriesThisYear(),
		SalesPerMonth:       sales,
		ProductDeliveries:   products,
	}
}

func toOrder(o queries.GetOrderQueryResponse) api.Order {
	items := make([]api.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = api.OrderItem{
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		}
	}

	history := make([]api.StateChange, len(o.History))
	for i, c := range o.History {
		history[i] = api.StateChange{From: c.From, To: c.To, At: utc(c.At), Role: c.Role}
	}

	response := api.Order{
		Id:               o.ID.Bytes(),
		Customer:         o.Customer,
		CreatedAt:        utc(o.CreatedAt),
		State:            o.State,
		StateDisplayName: o.StateDisplayName,
		Version:          o.Version,
		Items:            items,
		History:          history,
	}
	if o.DueDate != nil {
		due := utc(*o.DueDate)
		response.DueDate = &due
	}

	return response
}

func toStateChange(c order.StateChange) api.StateChange {
	orderID := c.OrderID().Bytes()

	return api.StateChange{
		OrderId: &orderID,
		From:    c.From().String(),
		To:      c.To().String(),
		At:      utc(c.At()),
		Role:    c.Role().String(),
	}
}
