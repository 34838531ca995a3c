package http

import (
	"time"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/partner"
)

// Error is the JSON body returned for every non-2xx response. Validation
// failures additionally carry one FieldError per violated field.
type Error struct {
	Code        int          `json:"code"`
	Message     string       `json:"message"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

// FieldError names a single field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewOrderItem is one line of an order creation request.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	PartnerID string         `json:"partnerId"`
	Items     []NewOrderItem `json:"items"`
}

// ChangeStatus is the body of PATCH /api/v1/orders/:id/status.
type ChangeStatus struct {
	Status string `json:"status"`
}

// NewPartner is the body of POST /api/v1/partners and PUT /api/v1/partners/:id.
type NewPartner struct {
	Name        string `json:"name"`
	CreditLimit string `json:"creditLimit"`
}

// OrderItem is one order line in responses.
type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Order is the full order representation in responses.
type Order struct {
	ID               string      `json:"id"`
	PartnerID        string      `json:"partnerId"`
	TotalAmount      string      `json:"totalAmount"`
	Status           string      `json:"status"`
	CreditReservedAt *time.Time  `json:"creditReservedAt,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	Items            []OrderItem `json:"items,omitempty"`
}

// OrderSummary is the list representation of an order, without items.
type OrderSummary struct {
	ID          string    `json:"id"`
	PartnerID   string    `json:"partnerId"`
	TotalAmount string    `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Partner is the partner representation in responses. CreditLimit is the
// currently available credit.
type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreditLimit string `json:"creditLimit"`
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ID:        item.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
		})
	}

	return Order{
		ID:               o.ID().String(),
		PartnerID:        o.PartnerID().String(),
		TotalAmount:      o.TotalAmount().String(),
		Status:           o.Status().String(),
		CreditReservedAt: o.CreditReservedAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Items:            items,
	}
}

func orderFromReadModel(resp queries.GetOrderByIDQueryResponse) Order {
	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}

	return Order{
		ID:               resp.ID.String(),
		PartnerID:        resp.PartnerID.String(),
		TotalAmount:      resp.TotalAmount.String(),
		Status:           resp.Status.String(),
		CreditReservedAt: resp.CreditReservedAt,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
		Items:            items,
	}
}

func summariesFromReadModel(responses []queries.OrderSummaryResponse) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(responses))
	for _, resp := range responses {
		summaries = append(summaries, OrderSummary{
			ID:          resp.ID.String(),
			PartnerID:   resp.PartnerID.String(),
			TotalAmount: resp.TotalAmount.String(),
			Status:      resp.Status.String(),
			CreatedAt:   resp.CreatedAt,
			UpdatedAt:   resp.UpdatedAt,
		})
	}
	return summaries
}

func partnerFromDomain(p *partner.Partner) Partner {
	return Partner{
		ID:          p.ID().String(),
		Name:        p.Name(),
		CreditLimit: p.CreditLimit().String(),
	}
}
