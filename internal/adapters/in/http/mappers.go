package http

import (
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"
)

func toCart(resp queries.GetCartQueryResponse, violation error) servers.Cart {
	q := resp.Quote
	items := make([]servers.CartItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, servers.CartItem{
			ItemKey:   item.Key().String(),
			ProductId: item.ProductID(),
			Size:      optional(item.Variant().Size),
			Color:     optional(item.Variant().Color),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			Stock:     item.Stock(),
			LineTotal: item.LineTotal().String(),
		})
	}

	return servers.Cart{
		CartId:        resp.CartID,
		Items:         items,
		CouponCode:    optional(resp.RequestedCoupon),
		AppliedCoupon: optional(q.CouponCode),
		CouponError:   errorBody(q.CouponErr),
		Violation:     errorBody(violation),
		Subtotal:      q.Subtotal.String(),
		Discount:      q.Discount.String(),
		Shipping:      q.Shipping.String(),
		Total:         q.Total.String(),
	}
}

func toOrder(resp queries.GetOrderQueryResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, servers.OrderLine{
			ItemKey:   line.ItemKey,
			ProductId: line.ProductID,
			Size:      optional(line.Size),
			Color:     optional(line.Color),
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.String(),
		})
	}

	history := make([]servers.StatusChange, 0, len(resp.History))
	for _, change := range resp.History {
		history = append(history, servers.StatusChange{
			From:  servers.OrderStatus(change.From.String()),
			To:    servers.OrderStatus(change.To.String()),
			Actor: change.Actor,
			At:    change.At,
		})
	}

	return servers.Order{
		Id:         resp.ID.Bytes(),
		Status:     servers.OrderStatus(resp.Status.String()),
		Lines:      lines,
		Subtotal:   resp.Subtotal.String(),
		Discount:   resp.Discount.String(),
		Shipping:   resp.Shipping.String(),
		Total:      resp.Total.String(),
		CouponCode: optional(resp.CouponCode),
		Shipment: servers.Shipment{
			Carrier:        optional(resp.Shipment.Carrier),
			TrackingNumber: optional(resp.Shipment.TrackingNumber),
			TrackingUrl:    optional(resp.Shipment.TrackingURL),
		},
		AdminNotes: optional(resp.AdminNotes),
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
		Version:    resp.Version,
		History:    history,
	}
}

func toOrderList(resp queries.ListOrdersQueryResponse, query queries.ListOrdersQuery) servers.OrderList {
	summaries := make([]servers.OrderSummary, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		summaries = append(summaries, servers.OrderSummary{
			Id:        o.ID.Bytes(),
			Status:    servers.OrderStatus(o.Status.String()),
			ItemCount: o.ItemCount,
			Total:     o.Total.String(),
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
			Version:   o.Version,
		})
	}

	return servers.OrderList{
		Orders:     summaries,
		TotalCount: resp.TotalCount,
		Limit:      query.Limit(),
		Offset:     query.Offset(),
	}
}

func toOrderMutation(result commands.OrderMutation) servers.OrderMutation {
	o := result.Order
	mutation := servers.OrderMutation{
		OrderId: o.ID().Bytes(),
		Status:  servers.OrderStatus(o.Status().String()),
		Version: o.Version(),
		Changed: !result.Change.IsEmpty(),
	}
	if mutation.Changed {
		c := result.Change
		mutation.Change = &servers.OrderChange{
			Kind:   servers.OrderChangeKind(c.Kind),
			From:   servers.OrderStatus(c.From.String()),
			To:     servers.OrderStatus(c.To.String()),
			Fields: c.Fields,
			Actor:  optional(c.Actor),
			At:     c.At,
		}
	}
	return mutation
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
